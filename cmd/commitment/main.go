// Package main provides the CLI entry point for commitment.
package main

import (
	"os"
	"runtime/debug"

	"github.com/alexander-akhmetov/commitment/internal/cli"
)

// Version information set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(resolveVersion(version, commit, date, debug.ReadBuildInfo))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion keeps ldflags values for release builds. Dev builds take
// commit and date from the VCS stamp in the build info, when there is one.
func resolveVersion(v, c, d string, readBuildInfo func() (*debug.BuildInfo, bool)) (string, string, string) {
	if v != "dev" {
		return v, c, d
	}
	info, ok := readBuildInfo()
	if !ok {
		return v, c, d
	}
	c, d = versionFromSettings(info.Settings)
	return v, c, d
}

func versionFromSettings(settings []debug.BuildSetting) (string, string) {
	var revision, stamp string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			stamp = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	c := "unknown"
	if len(revision) >= 7 {
		c = revision[:7]
		if dirty {
			c += "-dirty"
		}
	}

	d := "unknown"
	if stamp != "" {
		d = stamp
	}
	return c, d
}
