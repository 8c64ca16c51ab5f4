// Package version holds the build version of roboquote.
package version

// Version is the current release, overridable at build time with
// -ldflags "-X github.com/flifloo/roboquote/version.Version=..."
var Version = "1.0.0"
