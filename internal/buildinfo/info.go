// Package buildinfo carries the version stamp shown by nordea-parser
// --version.
package buildinfo

// Set at build time via
// -ldflags "-X github.com/fredrikluo/nordea-parser/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
