package luapattern

// Config tunes the performance characteristics of a compiled Regex (spec
// §5: compilation and matching are pure functions of their inputs).
// EnableASCIIFastPath and EnableLiteralPrefilter only pick among
// behaviorally equivalent strategies for producing the same result;
// MaxRecursionDepth can change a result, because an attempt whose
// recursion passes the bound fails.
//
// The core spec (§6) says the library has no configuration; Config is this
// port's ambient-stack addition, mirroring the sibling regex engine's own
// meta.Config knob (MaxDFAStates, EnableDFA, ...) for the strategies that
// engine actually has available here: an ASCII fast path and a literal-
// prefix prefilter.
type Config struct {
	// EnableASCIIFastPath skips UTF-8 decoding of the subject when it is
	// pure ASCII, so the input view addresses subject bytes directly
	// instead of building a code-point table. See internal/asciiopt.
	EnableASCIIFastPath bool

	// EnableLiteralPrefilter builds an Aho-Corasick automaton over a
	// compiled program's mandatory leading literal run (if any) and uses
	// it to jump the match driver's start cursor to the next candidate
	// byte offset instead of probing every position. See internal/prefilter.
	EnableLiteralPrefilter bool

	// MaxRecursionDepth bounds the VM's Split/Save recursion depth. Zero
	// means unbounded. A pathological pattern/subject pairing can recurse
	// once per instruction per attempt position (spec §4.4); this guards
	// against exhausting the goroutine stack on such inputs by failing
	// the attempt instead of crashing.
	MaxRecursionDepth int
}

// DefaultConfig returns the configuration Compile and MustCompile use: both
// optimizations enabled, recursion depth capped at a generous but finite
// bound.
//
// Example:
//
//	config := luapattern.DefaultConfig()
//	config.MaxRecursionDepth = 0 // unbounded
//	re, err := luapattern.CompileWithConfig(`%d+`, config)
func DefaultConfig() Config {
	return Config{
		EnableASCIIFastPath:    true,
		EnableLiteralPrefilter: true,
		MaxRecursionDepth:      8192,
	}
}
