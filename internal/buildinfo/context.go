// Package buildinfo contains build-time metadata separate from user configuration
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set at link time with -ldflags "-X github.com/orbitdata/query-data/internal/buildinfo.version=..."
var (
	version   string
	buildDate string
)

// Context contains build-time metadata that is not user-configurable
type Context struct {
	// Version holds the Git version tag from build
	Version string

	// BuildDate is the time when the binary was built
	BuildDate string
}

// Current returns the metadata of the running binary. Without link-time
// values it falls back to the module version recorded by the Go toolchain.
func Current() *Context {
	c := &Context{Version: version, BuildDate: buildDate}
	if c.Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" {
			c.Version = info.Main.Version
		}
	}
	return c
}

// GetVersion returns the version or "dev" for local builds
func (c *Context) GetVersion() string {
	if c == nil || c.Version == "" {
		return "dev"
	}
	return c.Version
}

// GetBuildDate returns the build date or "unknown"
func (c *Context) GetBuildDate() string {
	if c == nil || c.BuildDate == "" {
		return "unknown"
	}
	return c.BuildDate
}

// String formats the metadata for --version output
func (c *Context) String() string {
	return fmt.Sprintf("%s (built %s)", c.GetVersion(), c.GetBuildDate())
}
