// Package asciiopt provides the ASCII fast-path check used by
// internal/input to skip UTF-8 decoding when a subject is pure ASCII.
//
// Grounded on the sibling regex engine's simd package
// (simd/ascii_amd64.go, simd/ascii_fallback.go, simd/ascii_generic.go):
// that package dispatches to an AVX2 kernel gated on
// golang.org/x/sys/cpu.X86.HasAVX2, falling back to a SWAR (8-bytes-at-a-
// time) pure-Go scan. This package has no assembly kernel, so IsASCII
// always runs the SWAR scan (ported from simd's isASCIIGeneric), but it
// still queries the same CPU feature once at init and exposes it as
// FastPathAvailable. No other package in this module reads the flag, and
// Config has no field for it.
package asciiopt

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// FastPathAvailable reports whether the current CPU has AVX2, the same
// signal the sibling engine uses to pick its SIMD ASCII kernel. This
// engine always uses the portable SWAR scan below regardless of the
// flag's value; the flag exists purely as diagnostic metadata. It is
// independent of Config.EnableASCIIFastPath in the root package, which
// decides whether IsASCII is consulted at all.
var FastPathAvailable = cpu.X86.HasAVX2

const hi8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte in data has its high bit clear.
//
// Uses the SWAR technique: read 8 bytes at a time as a little-endian
// uint64 and test all high bits in one AND, falling back to a byte loop
// for the unaligned tail and for inputs shorter than 8 bytes.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if n < 8 {
		for _, b := range data {
			if b >= 0x80 {
				return false
			}
		}
		return true
	}

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if chunk&hi8 != 0 {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}
