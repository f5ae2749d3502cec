// Package vm implements the recursive backtracking interpreter of the
// compiled bytecode program (spec §4.4), grounded on
// original_source/src/recursive/program.rs's exec function — the
// "snapshot-before, recurse, restore-on-failure" Save semantics there is
// reproduced exactly, since it is the sole mechanism making captures
// transactional across abandoned branches (spec §9).
package vm

import (
	"github.com/coregx/luapattern/internal/class"
	"github.com/coregx/luapattern/internal/compiler"
	"github.com/coregx/luapattern/internal/input"
)

// Context is one VM attempt's mutable state: the shared program and
// input view, the instruction and subject cursors, and the save-slot
// array (spec §3 "Context"). Capture 0 (slots 0/1) always denotes the
// whole-match span.
type Context struct {
	Prog  []compiler.Inst
	View  *input.View
	PC    int
	SP    int
	Saved []int

	depth    int
	maxDepth int
}

// NewContext builds a fresh Context for a single attempt at a given start
// position. slotCount must cover all nine possible back-reference targets
// regardless of how many groups the pattern actually opens (callers pass
// 2*max(captureCount+1, 10)), so a reference to an unopened group always
// has a slot to read rather than indexing out of range. maxDepth bounds
// recursion depth (Config.MaxRecursionDepth); 0 means unbounded.
func NewContext(prog []compiler.Inst, view *input.View, slotCount, start, maxDepth int) *Context {
	ctx := &Context{Prog: prog, View: view, SP: start, Saved: make([]int, slotCount), maxDepth: maxDepth}
	ctx.clearSaved()
	return ctx
}

// Reset rewinds a Context for another attempt at a new start position,
// reusing its save-slot array's backing storage.
func (ctx *Context) Reset(start int) {
	ctx.PC = 0
	ctx.SP = start
	ctx.depth = 0
	ctx.clearSaved()
}

// clearSaved fills every slot with -1, a sentinel distinct from any real
// code-point index, marking a capture as never opened. OpSave always
// writes a non-negative SP, so -1 can never appear except as "unset".
func (ctx *Context) clearSaved() {
	for i := range ctx.Saved {
		ctx.Saved[i] = -1
	}
}

// Exec interprets ctx.Prog starting at ctx.PC, advancing ctx.SP and
// ctx.Saved as instructions are consumed. Returns true iff a Match
// instruction was reached; on success ctx.Saved holds the accepting
// path's capture positions (code-point indices). On failure, any Save
// writes made during this call (and its recursive children) have already
// been rolled back by the time Exec returns.
func Exec(ctx *Context) bool {
	if ctx.maxDepth > 0 && ctx.depth > ctx.maxDepth {
		return false
	}

	for {
		inst := ctx.Prog[ctx.PC]
		switch inst.Kind {
		case compiler.OpChar:
			r, ok := ctx.View.At(ctx.SP)
			if !ok || !class.IsMatched(inst.Class, r) {
				return false
			}
			ctx.PC++
			ctx.SP++

		case compiler.OpCaptured:
			if !execCaptured(ctx, inst.N) {
				return false
			}
			ctx.PC++

		case compiler.OpBorder:
			if !execBorder(ctx, inst.BorderOpen, inst.BorderClose) {
				return false
			}
			ctx.PC++

		case compiler.OpFrontier:
			if !execFrontier(ctx, inst.Class) {
				return false
			}
			ctx.PC++

		case compiler.OpJmp:
			ctx.PC = inst.X

		case compiler.OpSplit:
			ctx.PC = inst.X
			ctx.depth++
			ok := Exec(ctx)
			ctx.depth--
			if ok {
				return true
			}
			ctx.PC = inst.Y
			// continue in this frame at Y, no recursion needed for the
			// second branch: it is a plain loop iteration.

		case compiler.OpSave:
			slot := inst.N
			old := ctx.Saved[slot]
			ctx.Saved[slot] = ctx.SP
			ctx.PC++
			ctx.depth++
			ok := Exec(ctx)
			ctx.depth--
			if ok {
				return true
			}
			ctx.Saved[slot] = old
			return false

		case compiler.OpMatch:
			return true
		}
	}
}

// execCaptured re-matches the code points previously saved in capture n
// (back-reference). Fails the branch, never panics, when capture n has no
// group in the pattern or is not yet closed at the reference point (either
// leaves a -1 sentinel in Saved) — spec §8's boundary case for an
// unresolved back-reference. Otherwise restores the subject pointer on
// any mismatch or end-of-input.
func execCaptured(ctx *Context, n int) bool {
	lo, hi := ctx.Saved[2*n], ctx.Saved[2*n+1]
	if lo < 0 || hi < 0 {
		return false
	}
	old := ctx.SP
	for i := lo; i < hi; i++ {
		want, ok := ctx.View.At(i)
		if !ok {
			ctx.SP = old
			return false
		}
		got, gotOK := ctx.View.At(ctx.SP)
		if !gotOK || got != want {
			ctx.SP = old
			return false
		}
		ctx.SP++
	}
	return true
}

// execBorder consumes a depth-balanced span opened by `open` and closed
// by `close` (spec §4.4 "%bxy").
func execBorder(ctx *Context, open, close rune) bool {
	old := ctx.SP
	start, ok := ctx.View.At(ctx.SP)
	if !ok || start != open {
		return false
	}
	ctx.SP++
	depth := 1
	for depth > 0 {
		r, ok := ctx.View.At(ctx.SP)
		if !ok {
			ctx.SP = old
			return false
		}
		switch r {
		case open:
			depth++
		case close:
			depth--
		}
		ctx.SP++
	}
	return true
}

// execFrontier is the zero-width %f[set] assertion: succeeds iff the
// current code point satisfies class and the preceding one does not. The
// code point just outside either end of the subject is treated as NUL.
func execFrontier(ctx *Context, c class.Class) bool {
	var prev rune
	if ctx.SP > 0 {
		prev, _ = ctx.View.At(ctx.SP - 1)
	}
	curr, _ := ctx.View.At(ctx.SP) // zero value (NUL) at end-of-input, as spec requires
	return class.IsMatched(c, curr) && !class.IsMatched(c, prev)
}
