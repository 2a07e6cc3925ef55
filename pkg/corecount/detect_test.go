package corecount

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownPlatformWarnsOnce(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	d := &Detector{
		Platform: DetectPlatform("SolarisFoo"),
		OSName:   "SolarisFoo",
		Log:      logger,
	}

	_, ok := d.PhysicalCoreCount()
	assert.False(t, ok)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	// The warning names the unrecognized OS so it can be reported.
	assert.Contains(t, hook.LastEntry().Message, "SolarisFoo")
}

func TestNewForOSDefaults(t *testing.T) {
	d := NewForOS("FreeBSD 14.0-RELEASE")
	assert.Equal(t, PlatformFreeBSD, d.Platform)
	assert.Equal(t, "FreeBSD 14.0-RELEASE", d.OSName)
	assert.Equal(t, DefaultCPUInfoPath, d.CPUInfoPath)
	assert.NotNil(t, d.Runner)
	assert.NotNil(t, d.Log)
}

func TestNewClassifiesCurrentOS(t *testing.T) {
	d := New()
	assert.NotEmpty(t, d.OSName)
	// Platform may legitimately be unknown on exotic hosts, but on the
	// platforms this project supports the classifier must recognize the
	// runtime identifier.
	switch d.OSName {
	case "linux", "windows", "darwin", "freebsd":
		assert.NotEqual(t, PlatformUnknown, d.Platform)
	}
}

func TestRepeatedCallsReturnSameValue(t *testing.T) {
	d, _ := windowsDetector(cannedRunner(t, "wmic", "NumberOfCores=4\r\n", 0))

	first, firstOK := d.PhysicalCoreCount()
	second, secondOK := d.PhysicalCoreCount()
	assert.Equal(t, first, second)
	assert.Equal(t, firstOK, secondOK)
}
