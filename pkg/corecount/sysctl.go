package corecount

import "strings"

// sysctl runs the system-control utility and returns its trimmed
// combined output. ok is false on spawn failure or non-zero exit, both
// logged here.
func (d *Detector) sysctl(args ...string) (string, bool) {
	out, exitCode, err := d.Runner.Run("sysctl", args...)
	if err != nil {
		d.Log.Errorf("spawning sysctl: %v, core count unavailable", err)
		return "", false
	}
	if exitCode != 0 {
		d.Log.Errorf("sysctl %s exited with status %d", strings.Join(args, " "), exitCode)
		return "", false
	}
	return strings.TrimSpace(out), true
}
