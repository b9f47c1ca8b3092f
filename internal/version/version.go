// Package version provides version information for seedgen.
// The Version variable is set at build time via ldflags.
package version

// Version is the current version of seedgen.
// Set at build time via: -ldflags "-X github.com/xdg/seedgen/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// IsDev reports whether this is a development build.
func IsDev() bool {
	return Version == "" || Version == "dev"
}
