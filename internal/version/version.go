// Package version provides version information for simplog.
// The Version variable is set at build time via ldflags.
package version

import "runtime/debug"

// Version is the current version of simplog.
// Set at build time via: -ldflags "-X github.com/xdg/simplog/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// String returns Version, or the module version recorded by go install when
// Version was not set at build time.
func String() string {
	return resolve(Version, debug.ReadBuildInfo)
}

func resolve(v string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if v != "dev" {
		return v
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return v
}
