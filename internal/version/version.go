// internal/version/version.go
package version

// Version is the tool version, overridable via -ldflags at build time.
var Version = "0.3.0"
