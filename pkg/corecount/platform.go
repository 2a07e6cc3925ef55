package corecount

import "strings"

// Platform identifies an operating system family with a known core
// counting strategy.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux
	PlatformWindows
	PlatformDarwin
	PlatformFreeBSD
)

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	case PlatformDarwin:
		return "darwin"
	case PlatformFreeBSD:
		return "freebsd"
	default:
		return "unknown"
	}
}

// DetectPlatform classifies an OS name by prefix. It accepts both Go
// runtime identifiers (runtime.GOOS values such as "linux" or "darwin")
// and long-form names as reported by uname or a JVM os.name property
// ("Linux", "LINUX", "Windows Server 2022", "Mac OS X", "macOS",
// "FreeBSD 14.0-RELEASE"). Anything else is PlatformUnknown.
func DetectPlatform(name string) Platform {
	switch {
	case hasAnyPrefix(name, "linux", "Linux", "LINUX"):
		return PlatformLinux
	case hasAnyPrefix(name, "windows", "Windows"):
		return PlatformWindows
	case hasAnyPrefix(name, "darwin", "Darwin", "Mac OS X", "macOS"):
		return PlatformDarwin
	case hasAnyPrefix(name, "freebsd", "FreeBSD"):
		return PlatformFreeBSD
	default:
		return PlatformUnknown
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
