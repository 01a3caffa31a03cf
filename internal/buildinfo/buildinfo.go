package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/katalvlaran/gridbfs/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("gridbfs %s (commit=%s, date=%s)", Version, Commit, Date)
}
