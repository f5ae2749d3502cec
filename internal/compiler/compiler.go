// Package compiler lowers a lexed pattern element stream into a linear
// bytecode Program, following the micro-program table in spec §4.3
// (grounded on original_source/src/regex.rs's Regex::new, the most
// complete of the Rust source's several evolutionary snapshots).
package compiler

import (
	"strings"

	"github.com/coregx/luapattern/internal/class"
	"github.com/coregx/luapattern/internal/lexer"
	"github.com/coregx/luapattern/internal/perr"
)

// OpKind identifies a bytecode instruction variant (spec §3 "Code").
type OpKind uint8

const (
	// OpChar consumes one code point iff it satisfies Class.
	OpChar OpKind = iota
	// OpCaptured re-matches the code points saved in capture N (back-reference).
	OpCaptured
	// OpBorder is the balanced-bracket matcher %bxy.
	OpBorder
	// OpFrontier is the zero-width %f[set] assertion.
	OpFrontier
	// OpJmp is an unconditional branch to an absolute program index.
	OpJmp
	// OpSplit is a nondeterministic branch: try X first, then Y.
	OpSplit
	// OpSave records the subject pointer into a capture slot.
	OpSave
	// OpMatch accepts.
	OpMatch
)

// Inst is a single bytecode instruction. Only the fields relevant to Kind
// are meaningful.
type Inst struct {
	Kind        OpKind
	Class       class.Class // OpChar, OpFrontier
	N           int         // OpCaptured (capture index), OpSave (slot index)
	BorderOpen  rune        // OpBorder
	BorderClose rune        // OpBorder
	X, Y        int         // OpSplit (X tried first); OpJmp uses X as target
}

// Program is the compiled artifact: spec §3 "Regex". Immutable after
// Compile returns.
type Program struct {
	Code         []Inst
	AnchorStart  bool
	AnchorEnd    bool
	CaptureCount int // number of parenthesized groups, 0..=9

	// LeadingLiteral is the run of exact-one literal runes that must match
	// starting at position 0 of any successful attempt (possibly empty),
	// used by internal/prefilter to build a fast-skip automaton (see
	// SPEC_FULL.md "DOMAIN STACK").
	LeadingLiteral []rune
}

// Compile lowers pattern into a Program, or returns a *perr.CompileError
// describing the first malformed construct encountered.
func Compile(pattern string) (*Program, error) {
	anchorStart := strings.HasPrefix(pattern, "^")
	anchorEnd := strings.HasSuffix(pattern, "$")

	body := pattern
	if anchorStart {
		body = body[len("^"):]
	}
	if anchorEnd {
		body = body[:len(body)-len("$")]
	}

	lx := lexer.New(pattern, body)

	prog := []Inst{{Kind: OpSave, N: 0}}
	depth := 0
	for {
		elem, quant, ok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch elem.Kind {
		case lexer.SaveOpen:
			depth++
		case lexer.SaveClose:
			depth--
		}

		code := instForElement(elem)
		pc := len(prog)

		switch quant {
		case lexer.ExactlyOne:
			prog = append(prog, code)
		case lexer.ZeroOrOne:
			prog = append(prog, Inst{Kind: OpSplit, X: pc + 1, Y: pc + 2})
			prog = append(prog, code)
		case lexer.OneOrMany:
			prog = append(prog, code)
			prog = append(prog, Inst{Kind: OpSplit, X: pc, Y: pc + 2})
		case lexer.ZeroOrManyGreedy:
			prog = append(prog, Inst{Kind: OpSplit, X: pc + 1, Y: pc + 3})
			prog = append(prog, code)
			prog = append(prog, Inst{Kind: OpJmp, X: pc})
		case lexer.ZeroOrManyLazy:
			prog = append(prog, Inst{Kind: OpSplit, X: pc + 3, Y: pc + 1})
			prog = append(prog, code)
			prog = append(prog, Inst{Kind: OpJmp, X: pc})
		}
	}

	if depth > 0 {
		return nil, perr.New(pattern, len([]rune(body)), perr.ErrUnterminatedGroup)
	}

	prog = append(prog, Inst{Kind: OpSave, N: 1}, Inst{Kind: OpMatch})

	return &Program{
		Code:           prog,
		AnchorStart:    anchorStart,
		AnchorEnd:      anchorEnd,
		CaptureCount:   lx.CaptureCount(),
		LeadingLiteral: leadingLiteral(prog),
	}, nil
}

// instForElement converts a lexed element into its bytecode equivalent
// (spec §4.3: "Let code be the instruction equivalent of the element").
func instForElement(e lexer.Element) Inst {
	switch e.Kind {
	case lexer.AnyChar:
		return Inst{Kind: OpChar, Class: class.Class{Kind: class.Any}}
	case lexer.Literal:
		return Inst{Kind: OpChar, Class: class.Lit(e.Literal)}
	case lexer.Class, lexer.Set:
		return Inst{Kind: OpChar, Class: e.Class}
	case lexer.Captured:
		return Inst{Kind: OpCaptured, N: e.N}
	case lexer.Border:
		return Inst{Kind: OpBorder, BorderOpen: e.BorderOpen, BorderClose: e.BorderClose}
	case lexer.Frontier:
		return Inst{Kind: OpFrontier, Class: e.Class}
	case lexer.SaveOpen:
		return Inst{Kind: OpSave, N: 2 * e.N}
	case lexer.SaveClose:
		return Inst{Kind: OpSave, N: 2*e.N + 1}
	default:
		panic("luapattern: unreachable element kind")
	}
}

// leadingLiteral returns the maximal run of exact-one OpChar(Literal)
// instructions starting at program index 1 (index 0 is the prologue
// Save(0)), stopping at the first non-literal or quantified instruction.
// A one-or-more literal still contributes its one mandatory rune and then
// ends the run.
// Used by internal/prefilter to build a fast-skip automaton; an empty
// result means no literal prefilter applies (spec SPEC_FULL "DOMAIN
// STACK").
func leadingLiteral(prog []Inst) []rune {
	var lit []rune
	i := 1
	for i < len(prog) {
		inst := prog[i]
		if inst.Kind != OpChar || inst.Class.Kind != class.Literal {
			break
		}
		// A literal followed immediately by a Split means it was quantified
		// (ZeroOrOne/ZeroOrManyGreedy prepend a Split before the Char; those
		// cases already failed the Kind check above since inst would be the
		// Split itself at this index — so here it's always an exactly-one
		// literal unless the *next* instruction is the OneOrMany suffix
		// Split{X: i, Y: i+2}, which still requires the literal to have
		// matched once and is unsafe to skip past. Stop there too.
		if i+1 < len(prog) {
			next := prog[i+1]
			if next.Kind == OpSplit && next.X == i {
				lit = append(lit, inst.Class.Char)
				break
			}
		}
		lit = append(lit, inst.Class.Char)
		i++
	}
	return lit
}
