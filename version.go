package main

import (
	"strings"
)

// Version stores the version tag - Should include leading 'v' - Update before tagging new versions.
//
var Version = "v0.3.0"

// BuildDate is optional and can be set using '-ldflags "-X 'main.BuildDate=..."'.
//
var BuildDate string

// GitSummary is optional and can be set using '-ldflags "-X 'main.GitSummary=..."'.
// Generally meant to contain the value of:
//   git describe --tags --dirty --always
//
var GitSummary string

// versionString generates a version string from available vars,
// e.g. "v0.3.0 (build=v0.3.0-2-gabcdef date=2024-01-01)".
//
func versionString() string {
	var extras []string
	if len(GitSummary) > 0 {
		extras = append(extras, "build="+GitSummary)
	}
	if len(BuildDate) > 0 {
		extras = append(extras, "date="+BuildDate)
	}
	if len(extras) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(extras, " ") + ")"
}
