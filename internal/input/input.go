// Package input pre-indexes a subject string by code point, giving the VM
// a dense code-point-addressed view while still being able to recover
// byte offsets for capture extraction (spec §3 "Input view",
// §4.3/§4.5/§9 "Unicode vs bytes").
//
// Grounded on original_source/src/input.rs's Input type (byte_offset,
// char) pairs, generalized with the ASCII fast path described in
// SPEC_FULL.md's DOMAIN STACK section.
package input

import (
	"sort"

	"github.com/coregx/luapattern/internal/asciiopt"
)

// View is a subject string paired with a dense vector of (byte offset,
// code point) pairs, addressed primarily by code-point index.
type View struct {
	subject string
	chars   []point
	ascii   bool // true if every byte offset equals its code-point index
}

type point struct {
	byteOffset int
	r          rune
}

// New builds a View over subject. When the subject is all-ASCII (checked
// via internal/asciiopt, which itself is gated on Config.EnableASCIIFastPath
// by the caller), byte offset and code-point index coincide and View skips
// building the explicit table.
func New(subject string, enableASCIIFastPath bool) *View {
	if enableASCIIFastPath && asciiopt.IsASCII([]byte(subject)) {
		return &View{subject: subject, ascii: true}
	}

	chars := make([]point, 0, len(subject))
	for i, r := range subject {
		chars = append(chars, point{byteOffset: i, r: r})
	}
	return &View{subject: subject, chars: chars}
}

// Len returns the number of code points in the subject.
func (v *View) Len() int {
	if v.ascii {
		return len(v.subject)
	}
	return len(v.chars)
}

// Subject returns the original subject text.
func (v *View) Subject() string { return v.subject }

// At returns the code point at char-index i and whether i was in range.
func (v *View) At(i int) (rune, bool) {
	if v.ascii {
		if i < 0 || i >= len(v.subject) {
			return 0, false
		}
		return rune(v.subject[i]), true
	}
	if i < 0 || i >= len(v.chars) {
		return 0, false
	}
	return v.chars[i].r, true
}

// ByteIndex translates a code-point index into a byte offset. Passing
// Len() returns the byte length of the subject (one past the end), per
// spec §3's get_byte_index(len) contract.
func (v *View) ByteIndex(charIndex int) int {
	if v.ascii {
		return charIndex
	}
	if charIndex >= len(v.chars) {
		if len(v.chars) == 0 {
			return 0
		}
		last := v.chars[len(v.chars)-1]
		return last.byteOffset + runeLen(last.r)
	}
	return v.chars[charIndex].byteOffset
}

// CodePointIndex translates a byte offset into the code-point index of the
// code point starting at or after that offset (the first index i such that
// ByteIndex(i) >= byteOffset), or Len() if byteOffset is past the end. Used
// by the match driver to translate an internal/prefilter byte-offset hit
// back into the code-point addressing the match driver and VM use.
func (v *View) CodePointIndex(byteOffset int) int {
	if v.ascii {
		if byteOffset > len(v.subject) {
			return len(v.subject)
		}
		return byteOffset
	}
	return sort.Search(len(v.chars), func(i int) bool {
		return v.chars[i].byteOffset >= byteOffset
	})
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
