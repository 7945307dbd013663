// Package buildinfo carries version data stamped at link time with
// -ldflags "-X github.com/Pepsisalvaje/WordlistCraft/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("wordlistcraft %s (commit=%s, date=%s)", Version, Commit, Date)
}
