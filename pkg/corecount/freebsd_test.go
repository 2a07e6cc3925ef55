package corecount

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Four logical CPUs, two distinct location handles: hyperthreaded
// siblings share the handle of their physical core.
const devCPUHyperthreaded = `dev.cpu.0.%desc: ACPI CPU
dev.cpu.0.%driver: cpu
dev.cpu.0.%location: handle=\_PR_.CPU0
dev.cpu.0.freq: 3500
dev.cpu.1.%desc: ACPI CPU
dev.cpu.1.%driver: cpu
dev.cpu.1.%location: handle=\_PR_.CPU0
dev.cpu.2.%desc: ACPI CPU
dev.cpu.2.%driver: cpu
dev.cpu.2.%location: handle=\_PR_.CPU1
dev.cpu.3.%desc: ACPI CPU
dev.cpu.3.%driver: cpu
dev.cpu.3.%location: handle=\_PR_.CPU1
`

func freebsdDetector(runner Runner) (*Detector, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	return &Detector{
		Platform: PlatformFreeBSD,
		OSName:   "freebsd",
		Runner:   runner,
		Log:      logger,
	}, hook
}

func TestFreeBSDCountsDistinctLocations(t *testing.T) {
	var gotArgs []string
	runner := &MockRunner{
		RunFunc: func(name string, args ...string) (string, int, error) {
			gotArgs = args
			return devCPUHyperthreaded, 0, nil
		},
	}
	d, hook := freebsdDetector(runner)

	count, ok := d.PhysicalCoreCount()
	assert.True(t, ok)
	assert.Equal(t, 2, count)
	// The whole dev.cpu namespace is dumped, no value-only flag.
	assert.Equal(t, []string{"dev.cpu"}, gotArgs)
	assert.Empty(t, hook.Entries)
}

func TestFreeBSDSingleCore(t *testing.T) {
	out := "dev.cpu.0.%location: handle=\\_PR_.CPU0\n"
	d, _ := freebsdDetector(cannedRunner(t, "sysctl", out, 0))

	count, ok := d.PhysicalCoreCount()
	assert.True(t, ok)
	assert.Equal(t, 1, count)
}

func TestFreeBSDNoLocationLines(t *testing.T) {
	out := "dev.cpu.0.%desc: ACPI CPU\ndev.cpu.0.freq: 3500\n"
	d, hook := freebsdDetector(cannedRunner(t, "sysctl", out, 0))

	_, ok := d.PhysicalCoreCount()
	assert.False(t, ok)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestFreeBSDLocationLineWithoutHandle(t *testing.T) {
	// A location line with no backslash cannot name a physical slot and
	// is skipped rather than trusted.
	out := "dev.cpu.0.%location: unknown\ndev.cpu.1.%location: handle=\\_PR_.CPU0\n"
	d, _ := freebsdDetector(cannedRunner(t, "sysctl", out, 0))

	count, ok := d.PhysicalCoreCount()
	assert.True(t, ok)
	assert.Equal(t, 1, count)
}

func TestFreeBSDNonZeroExit(t *testing.T) {
	d, hook := freebsdDetector(cannedRunner(t, "sysctl", "sysctl: unknown oid 'dev.cpu'\n", 1))

	_, ok := d.PhysicalCoreCount()
	assert.False(t, ok)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "status 1")
}
