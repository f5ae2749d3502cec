// Package prefilter builds a fast-skip automaton for the leading literal
// run of a compiled program, letting the match driver jump its start
// cursor straight to the next candidate byte offset instead of probing
// the VM at every code point.
//
// Grounded on the sibling regex engine's prefilter package
// (prefilter/digit.go's DigitPrefilter: "finding a candidate position is
// not a full match, the full regex must still verify there") and on
// meta/compile.go's literal-extraction wiring, generalized for a
// single-pattern case via github.com/coregx/ahocorasick (see
// SPEC_FULL.md's DOMAIN STACK section for why a multi-pattern automaton
// is used for what is always exactly one literal in this dialect: Lua
// patterns have no alternation, so there is never more than one literal
// run to search for).
package prefilter

import "github.com/coregx/ahocorasick"

// Literal is a fast-skip prefilter for programs whose every successful
// match must begin with a fixed literal rune sequence. It is NOT a full
// matcher: Find only reports candidate byte offsets, which the VM must
// still verify.
type Literal struct {
	auto *ahocorasick.Automaton
}

// New builds a Literal prefilter from a leading-literal rune run
// (compiler.Program.LeadingLiteral). Returns nil if literal is empty
// (nothing to prefilter on) or if the automaton fails to build, either of
// which means the caller must fall back to probing every start position.
func New(literal []rune) *Literal {
	if len(literal) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(string(literal)))
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Literal{auto: auto}
}

// Find returns the byte offset of the next candidate occurrence of the
// literal at or after the byte offset `at`, or -1 if none remains.
func (l *Literal) Find(subject []byte, at int) int {
	if at > len(subject) {
		return -1
	}
	m := l.auto.Find(subject, at)
	if m == nil {
		return -1
	}
	return m.Start
}
