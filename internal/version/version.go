// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version of the turborand command.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the semantic version of the command.  It may be overridden at
// build time with:
// '-ldflags "-X github.com/decred/turborand/internal/version.Version=fullsemver"'
//
// It MUST be a full semantic version or the package panics on init.
var Version = "1.0.0-pre"

// SemVer is a parsed semantic version.
type SemVer struct {
	Major, Minor, Patch uint
	PreRelease          string
	BuildMetadata       string
}

// String returns the version as a semantic version string.
func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	if v.BuildMetadata != "" {
		s += "+" + v.BuildMetadata
	}
	return s
}

// Parsed holds Version split into its components.
var Parsed SemVer

func init() {
	v, err := Parse(Version)
	if err != nil {
		panic(err)
	}
	Parsed = v
}

// Parse splits a semantic version 2.0.0 string into its components.
func Parse(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var v SemVer
	fields := []struct {
		name string
		dst  *uint
		src  string
	}{
		{"major", &v.Major, m[1]},
		{"minor", &v.Minor, m[2]},
		{"patch", &v.Patch, m[3]},
	}
	for _, f := range fields {
		n, err := strconv.ParseUint(f.src, 10, 0)
		if err != nil {
			return SemVer{}, fmt.Errorf("malformed semver %s: %w", f.name, err)
		}
		*f.dst = uint(n)
	}
	v.PreRelease, v.BuildMetadata = m[4], m[5]
	return v, nil
}

// NormalizeString returns str stripped of all characters that may not appear
// in pre-release or build metadata strings.
func NormalizeString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// vcsCommitID returns the abbreviated commit the binary was built from, if
// the toolchain recorded one.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the full version.  When the binary records the commit it was
// built from and Version carries no build metadata, the commit is appended
// as build metadata.
func String() string {
	return withCommit(Parsed, vcsCommitID()).String()
}

func withCommit(v SemVer, commit string) SemVer {
	commit = NormalizeString(commit)
	if v.BuildMetadata == "" && commit != "" {
		v.BuildMetadata = commit
	}
	return v
}
