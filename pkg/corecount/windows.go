package corecount

import (
	"strconv"
	"strings"
)

// wmicArgs requests one list-formatted block of CPU properties per
// installed package, written to stdout.
var wmicArgs = []string{"/output:stdout", "cpu", "get", "/format:list"}

// Each CPU package contributes one "NumberOfCores=N" line; the total
// physical core count is the sum across packages.
func (d *Detector) countWindows() (int, bool) {
	out, exitCode, err := d.Runner.Run("wmic", wmicArgs...)
	if err != nil {
		d.Log.Errorf("spawning wmic: %v, core count unavailable", err)
		return 0, false
	}
	if exitCode != 0 {
		d.Log.Errorf("wmic exited with status %d: %s", exitCode, strings.TrimSpace(out))
		return 0, false
	}

	total := 0
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "NumberOfCores") {
			continue
		}
		_, value, found := strings.Cut(line, "=")
		n, parseErr := strconv.Atoi(strings.TrimSpace(value))
		if !found || parseErr != nil {
			// A partial sum is worse than no answer; give up on the
			// first malformed line.
			d.Log.Errorf("unexpected wmic output %q, core count unavailable", out)
			return 0, false
		}
		total += n
	}
	if total <= 0 {
		d.Log.Warnf("no NumberOfCores lines in wmic output, core count unavailable")
		return 0, false
	}
	return total, true
}
