package app

import "fmt"

// Build metadata, stamped by the release pipeline via -ldflags -X on
// this package. Binaries built without it report themselves as dev.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the stamped metadata as a single line for the
// startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
