// Package luapattern implements Lua's pattern-matching dialect: a small,
// deliberately non-regular-expression syntax (no alternation, no counted
// repetition, no look-around) compiled to a bytecode program and run on a
// recursive backtracking VM.
//
// Basic usage:
//
//	re, err := luapattern.Compile(`%d%d%d%d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m, ok := re.FindFirst("born in 1987"); ok {
//	    fmt.Println(m.String()) // "1987"
//	}
//
// Captures:
//
//	re := luapattern.MustCompile(`(%a+)@(%a+)`)
//	m, _ := re.FindFirst("user@example")
//	user, _, _ := m.Group(1)
//	host, _, _ := m.Group(2)
//
// Limitations: no alternation (`|`), no counted quantifiers (`{m,n}`), no
// named captures, no look-around, no case-insensitive mode, at most nine
// capture groups. See the dialect's grammar for the full picture.
package luapattern

import (
	"github.com/coregx/luapattern/internal/compiler"
	"github.com/coregx/luapattern/internal/prefilter"
)

// Regex is a compiled Lua pattern. A Regex is immutable once returned by
// Compile and is safe to use concurrently from multiple goroutines: each
// match invocation allocates its own VM context (spec §5).
//
// Example:
//
//	re := luapattern.MustCompile(`%u%l+`)
//	if _, ok := re.FindFirst("Hello"); ok {
//	    println("matched!")
//	}
type Regex struct {
	prog    *compiler.Program
	pattern string
	config  Config
	literal *prefilter.Literal // nil if no leading literal run, or prefiltering disabled
}

// Compile compiles pattern using DefaultConfig.
//
// Example:
//
//	re, err := luapattern.Compile(`%d%d%d%-%d%d%d%d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Useful for patterns
// known to be valid at init time.
//
// Example:
//
//	var wordRE = luapattern.MustCompile(`%a+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("luapattern: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with explicit performance tuning. The
// fast-path switches in config change only the strategy used to reach the
// same result; a different MaxRecursionDepth can change which attempts
// succeed (see Config).
//
// Example:
//
//	config := luapattern.DefaultConfig()
//	config.EnableASCIIFastPath = false
//	re, err := luapattern.CompileWithConfig(`%d+`, config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	prog, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var lit *prefilter.Literal
	if config.EnableLiteralPrefilter {
		lit = prefilter.New(prog.LeadingLiteral)
	}

	return &Regex{
		prog:    prog,
		pattern: pattern,
		config:  config,
		literal: lit,
	}, nil
}

// String returns the source pattern text used to compile the Regex.
//
// Example:
//
//	re := luapattern.MustCompile(`%d+`)
//	println(re.String()) // "%d+"
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of explicit parenthesized capture groups
// (0 to 9), not counting the implicit whole-match capture.
//
// Example:
//
//	re := luapattern.MustCompile(`(%a+)@(%a+)`)
//	println(re.NumSubexp()) // 2
func (r *Regex) NumSubexp() int {
	return r.prog.CaptureCount
}

// UsesLiteralPrefilter reports whether this Regex built an Aho-Corasick
// fast-skip automaton over a mandatory leading literal run. False either
// because the pattern has no such run (e.g. it starts with a class or a
// capture) or because Config.EnableLiteralPrefilter was false.
func (r *Regex) UsesLiteralPrefilter() bool {
	return r.literal != nil
}
