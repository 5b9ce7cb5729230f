// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux && go1.24

package entropy

import (
	"bytes"
	"strconv"

	"golang.org/x/sys/unix"
)

func init() {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return
	}
	if usesVDSO(utsname.Release[:]) {
		log.Debugf("Reading crypto/rand directly on kernel %s",
			bytes.TrimRight(utsname.Release[:], "\x00"))
		readCryptoRand = true
	}
}

// leadingInt parses the decimal number at the start of b and returns it along
// with the rest of b.
func leadingInt(b []byte) (int, []byte, bool) {
	end := 0
	for end < len(b) && b[end] >= '0' && b[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, b, false
	}
	v, err := strconv.Atoi(string(b[:end]))
	if err != nil {
		return 0, b, false
	}
	return v, b[end:], true
}

// usesVDSO reports whether a kernel release string such as "6.11.0-arch1"
// names a kernel that implements crypto/rand in the vDSO (6.11 and later).
func usesVDSO(release []byte) bool {
	maj, rest, ok := leadingInt(release)
	if !ok || len(rest) == 0 || rest[0] != '.' {
		return false
	}
	min, _, ok := leadingInt(rest[1:])
	if !ok {
		return false
	}
	return maj >= 7 || (maj == 6 && min >= 11)
}
