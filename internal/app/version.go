package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/catalog-backend/internal/app.Version=1.0.0"
// Binaries built without ldflags fall back to the VCS stamp of the module.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported at startup and by /health.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return buildVersion(info)
}

func buildVersion(info *debug.BuildInfo) string {
	commit, built := Commit, BuildTime
	modified := false

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" {
					commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			case "vcs.modified":
				modified = s.Value == "true" && Commit == "unknown"
			}
		}
	}

	if modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
