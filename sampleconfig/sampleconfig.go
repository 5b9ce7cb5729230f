// Copyright (c) 2017-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sampleconfig provides the commented example configuration file for
// the turborand command.
package sampleconfig

import (
	_ "embed"
)

// sampleTurborandConf is a string containing the commented example config for
// turborand.
//
//go:embed sample-turborand.conf
var sampleTurborandConf string

// Turborand returns a string containing the commented example config for
// turborand.
func Turborand() string {
	return sampleTurborandConf
}
