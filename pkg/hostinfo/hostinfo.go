// Package hostinfo reports coarse host CPU facts shown alongside the
// physical core count.
package hostinfo

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/tklauser/numcpus"
)

// CPUInfo abstracts host CPU introspection for testability.
type CPUInfo interface {
	// LogicalCPUs returns the number of CPUs available for scheduling,
	// hyperthreads included.
	LogicalCPUs() int

	// Topology returns the CPU geometry reported by the CPUID
	// instruction, zero-valued where CPUID is unsupported.
	Topology() Topology
}

// Topology describes the processor as CPUID sees it. It is a
// cross-check, not a substitute for OS-level detection: CPUID describes
// the installed package, not the subset of CPUs the process may run on.
type Topology struct {
	BrandName      string
	PhysicalCores  int
	ThreadsPerCore int
	LogicalCores   int
}

// RealCPUInfo implements CPUInfo against the running host.
type RealCPUInfo struct{}

// LogicalCPUs prefers the kernel's online-CPU count and falls back to
// the Go runtime view where that is unsupported.
func (r *RealCPUInfo) LogicalCPUs() int {
	if n, err := numcpus.GetOnline(); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

func (r *RealCPUInfo) Topology() Topology {
	return Topology{
		BrandName:      cpuid.CPU.BrandName,
		PhysicalCores:  cpuid.CPU.PhysicalCores,
		ThreadsPerCore: cpuid.CPU.ThreadsPerCore,
		LogicalCores:   cpuid.CPU.LogicalCores,
	}
}
