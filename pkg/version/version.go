// Package version holds the build version, overridable at link time with
// -ldflags "-X github.com/Dicklesworthstone/hiviz/pkg/version.Version=...".
package version

var Version = "0.1.0-dev"
