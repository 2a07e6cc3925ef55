// Package corecount determines the number of physical
// (non-hyperthreaded) CPU cores available to the current process.
//
// runtime.NumCPU reports logical CPUs: on a machine with
// hyper-threading that is typically twice the number of physical
// execution units. corecount answers the physical question by asking
// the OS directly, reading /proc/cpuinfo on Linux and spawning the
// native enumeration command (WMIC or sysctl) elsewhere.
package corecount

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// DefaultCPUInfoPath is the Linux kernel's CPU description pseudo-file.
const DefaultCPUInfoPath = "/proc/cpuinfo"

// Detector reports the number of physical CPU cores on a host. The
// platform is classified once at construction and treated as immutable
// for the life of the process.
//
// Construct with New or NewForOS; the fields are exported so tests can
// substitute a canned OS name, a cpuinfo fixture, a MockRunner or a
// capture logger.
type Detector struct {
	Platform    Platform // classified once, never changes at runtime
	OSName      string   // raw name Platform was classified from
	CPUInfoPath string   // Linux strategy only
	Runner      Runner   // subprocess strategies
	Log         logrus.FieldLogger
}

// New returns a Detector for the current OS with production defaults.
func New() *Detector {
	return NewForOS(runtime.GOOS)
}

// NewForOS returns a Detector for an explicit OS name, classified as by
// DetectPlatform. For callers that carry their own platform string and
// for tests.
func NewForOS(osName string) *Detector {
	return &Detector{
		Platform:    DetectPlatform(osName),
		OSName:      osName,
		CPUInfoPath: DefaultCPUInfoPath,
		Runner:      &RealRunner{},
		Log:         logrus.StandardLogger().WithField("comp", "corecount"),
	}
}

// PhysicalCoreCount reports the number of physical cores available to
// the process. On a virtual machine this is the count assigned to the
// VM, and when the process is restricted to a subset of the installed
// CPUs the restricted view is what the OS reports.
//
// The count, when ok, is always >= 1. ok is false when the count could
// not be determined; every such outcome is paired with a log entry
// saying why, so callers needing diagnostics should consult the log.
// Detection re-reads the OS data source on every call and spawns a
// subprocess on everything but Linux, so store the result instead of
// calling repeatedly.
func (d *Detector) PhysicalCoreCount() (count int, ok bool) {
	switch d.Platform {
	case PlatformLinux:
		return d.countLinux()
	case PlatformWindows:
		return d.countWindows()
	case PlatformDarwin:
		return d.countDarwin()
	case PlatformFreeBSD:
		return d.countFreeBSD()
	default:
		d.Log.Warnf("unknown OS %q, please report this so a case can be added", d.OSName)
		return 0, false
	}
}

// PhysicalCoreCount reports the physical core count of the current host
// with production defaults. See Detector.PhysicalCoreCount.
func PhysicalCoreCount() (int, bool) {
	return New().PhysicalCoreCount()
}
