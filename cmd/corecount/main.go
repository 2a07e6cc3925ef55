package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vertti/corecount/pkg/corecount"
	"github.com/vertti/corecount/pkg/hostinfo"
	"github.com/vertti/corecount/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	jsonOut  bool
	verbose  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "corecount",
	Short: "Report the physical CPU core count of this machine",
	Long: `Corecount reports the number of physical (non-hyperthreaded) CPU cores
available to the current process, alongside the logical count the scheduler
sees. Exits 1 when the physical count cannot be determined.

Examples:
  corecount                 # human-readable report
  corecount --json          # machine-readable report
  corecount -v              # include CPUID topology cross-check
  corecount --log-level=debug`,
	Version: Version,
	RunE:    runDetect,
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include CPUID topology in the report")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logrus.WarnLevel.String(),
		"detection diagnostics level (trace, debug, info, warning, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDetect(_ *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	logrus.SetLevel(level)

	detector := corecount.New()
	cores, known := detector.PhysicalCoreCount()

	info := &hostinfo.RealCPUInfo{}
	report := output.Report{
		OS:            detector.Platform.String(),
		Known:         known,
		PhysicalCores: cores,
		LogicalCPUs:   info.LogicalCPUs(),
	}
	if verbose {
		topo := info.Topology()
		report.CPUIDBrand = topo.BrandName
		report.CPUIDPhysicalCores = topo.PhysicalCores
		report.CPUIDThreadsPerCore = topo.ThreadsPerCore
	}

	if jsonOut {
		if err := output.PrintJSON(os.Stdout, report); err != nil {
			return err
		}
	} else {
		output.PrintReport(os.Stdout, report)
	}

	if !known {
		os.Exit(1)
	}
	return nil
}
