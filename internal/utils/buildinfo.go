package utils

import (
	"runtime/debug"
)

const (
	unknownVersion = "unknown"
	develVersion   = "(devel)"
)

// Version is stamped at release time with -ldflags "-X github.com/temirov/tabcopy/internal/utils.Version=...".
var Version string

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetApplicationVersion reports the stamped version, then the module version recorded by go install.
// Development builds report "unknown"; the working directory never influences the result.
func GetApplicationVersion() string {
	if Version != "" {
		return Version
	}
	buildInfo, buildInfoAvailable := readBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
