package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime can be stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/tokipona-words/internal/app.Version=1.0.0" ./cmd/csv2json
//
// Unstamped binaries fall back to the VCS data Go embeds in the build info.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line printed by -version and logged at startup.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(Version, Commit, BuildTime, info)
}

func formatVersion(version, commit, built string, info *debug.BuildInfo) string {
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" && s.Value != "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "unknown" && s.Value != "" {
					built = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("csv2json %s (commit: %s, built: %s)", version, commit, built)
}
