// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries build-time metadata injected with linker flags.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo]. Empty values are reported as "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the release version of the build.
func (b BuildInfo) Version() string { return b.version }

// Date returns the build timestamp.
func (b BuildInfo) Date() string { return b.date }

// Commit returns the source commit of the build.
func (b BuildInfo) Commit() string { return b.commit }

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.version, b.date, b.commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
