// Package version holds build-time version metadata for the timefang binary.
package version

import "runtime/debug"

// Populated at build time via -ldflags. Defaults cover plain `go build`,
// where only the embedded VCS info is available.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the git hash the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// InitBinaryVersion backfills version metadata from the embedded build info
// when the binary was not stamped via ldflags.
func InitBinaryVersion() {
	if Version != "dev" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			Commit = setting.Value
		case "vcs.time":
			Date = setting.Value
		}
	}
}
