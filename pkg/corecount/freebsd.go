package corecount

import "strings"

// dev.cpu device entries carry a location handle shared by
// hyperthreaded siblings, so the number of distinct handles is the
// physical core count. A dump line looks like:
//
//	dev.cpu.0.%location: handle=\_PR_.CPU0
func (d *Detector) countFreeBSD() (int, bool) {
	out, ok := d.sysctl("dev.cpu")
	if !ok {
		return 0, false
	}

	locations := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "location") {
			continue
		}
		fields := strings.Split(line, `\`)
		if len(fields) < 2 {
			continue
		}
		locations[fields[1]] = struct{}{}
	}
	if len(locations) == 0 {
		d.Log.Warnf("no location entries in dev.cpu output, core count unavailable")
		return 0, false
	}
	return len(locations), true
}
