// Package output renders core detection reports for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// Report is the CLI view of one detection run.
type Report struct {
	OS            string `json:"os"`
	Known         bool   `json:"known"`
	PhysicalCores int    `json:"physical_cores,omitempty"`
	LogicalCPUs   int    `json:"logical_cpus"`

	// CPUID cross-check, populated in verbose mode only.
	CPUIDBrand          string `json:"cpuid_brand,omitempty"`
	CPUIDPhysicalCores  int    `json:"cpuid_physical_cores,omitempty"`
	CPUIDThreadsPerCore int    `json:"cpuid_threads_per_core,omitempty"`
}

// PrintReport writes the human-readable form of r to w with a colored
// status tag.
func PrintReport(w io.Writer, r Report) {
	if r.Known {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, formatLabel(fmt.Sprintf("physical cores: %d", r.PhysicalCores)))
	} else {
		fmt.Fprintf(w, "%s[UNKNOWN]%s %s\n", red, reset, formatLabel("physical cores: could not be determined, see log"))
	}

	details := []string{
		fmt.Sprintf("os: %s", r.OS),
		fmt.Sprintf("logical cpus: %d", r.LogicalCPUs),
	}
	if r.CPUIDBrand != "" {
		details = append(details, fmt.Sprintf("cpuid brand: %s", r.CPUIDBrand))
	}
	if r.CPUIDPhysicalCores > 0 {
		details = append(details,
			fmt.Sprintf("cpuid physical cores: %d", r.CPUIDPhysicalCores),
			fmt.Sprintf("cpuid threads per core: %d", r.CPUIDThreadsPerCore))
	}
	for _, d := range details {
		fmt.Fprintf(w, "     %s\n", formatLabel(d))
	}
}

// PrintJSON writes r as an indented JSON object to w.
func PrintJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// formatLabel dims the "label:" part of a "label: value" line.
func formatLabel(s string) string {
	label, value, found := strings.Cut(s, ": ")
	if !found {
		return s
	}
	return fmt.Sprintf("%s%s:%s %s", dim, label, reset, value)
}
