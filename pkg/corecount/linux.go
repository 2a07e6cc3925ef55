package corecount

import (
	"os"
	"strings"
)

// Hyperthreaded siblings on the same physical core repeat the same
// "core id N" line in /proc/cpuinfo, so the number of distinct such
// lines is the physical core count.
func (d *Detector) countLinux() (int, bool) {
	data, err := os.ReadFile(d.CPUInfoPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Pre-procfs kernels are old but not broken.
			d.Log.Infof("old Linux without %s, core count unavailable", d.CPUInfoPath)
		} else {
			d.Log.Errorf("reading %s: %v", d.CPUInfoPath, err)
		}
		return 0, false
	}

	coreIDs := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "core id") {
			coreIDs[line] = struct{}{}
		}
	}
	if len(coreIDs) == 0 {
		d.Log.Warnf("no core id lines in %s, core count unavailable", d.CPUInfoPath)
		return 0, false
	}
	return len(coreIDs), true
}
