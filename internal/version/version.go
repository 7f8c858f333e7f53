// Package version holds build metadata injected at link time.
package version

// Version is overridden by -ldflags at release build time.
var Version = "dev"
