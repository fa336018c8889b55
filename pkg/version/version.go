// Package version reports the build version of carbontrace.
package version

import "runtime/debug"

// Set with -ldflags "-X github.com/rshade/carbontrace/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Link-time variables.
var (
	version = ""
	commit  = ""
)

const devVersion = "dev"

// GetVersion returns the linked version, then the module version from the
// build info, then "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetCommit returns the linked commit hash, or the VCS revision recorded
// by the Go toolchain.
func GetCommit() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return ""
}
