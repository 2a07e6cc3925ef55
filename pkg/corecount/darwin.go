package corecount

import "strconv"

// hw.physicalcpu already aggregates across CPU packages, so the single
// value is the answer.
func (d *Detector) countDarwin() (int, bool) {
	out, ok := d.sysctl("-n", "hw.physicalcpu")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		d.Log.Errorf("sysctl returned something that was not a number: %q", out)
		return 0, false
	}
	if n < 1 {
		d.Log.Errorf("sysctl reported a non-positive core count %d", n)
		return 0, false
	}
	return n, true
}
