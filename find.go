package luapattern

import (
	"github.com/coregx/luapattern/internal/input"
	"github.com/coregx/luapattern/internal/vm"
)

// FindAll scans subject left to right and returns every non-overlapping
// match, in scan order (spec §4.5). Returns nil if none are found; never
// errors.
//
// Example:
//
//	re := luapattern.MustCompile(`%d+`)
//	for _, m := range re.FindAll("1 22 333") {
//	    println(m.String())
//	}
func (r *Regex) FindAll(subject string) []Match {
	view := input.New(subject, r.config.EnableASCIIFastPath)
	matches, _ := r.scan(view, false)
	return matches
}

// FindFirst returns the first match in subject, if any.
//
// Example:
//
//	re := luapattern.MustCompile(`%d+`)
//	m, ok := re.FindFirst("born in 1987")
//	if ok {
//	    println(m.String()) // "1987"
//	}
func (r *Regex) FindFirst(subject string) (Match, bool) {
	view := input.New(subject, r.config.EnableASCIIFastPath)
	matches, _ := r.scan(view, true)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// scan runs the match driver described in spec §4.5. stopAfterFirst lets
// FindFirst reuse the same loop without scanning the rest of the subject.
func (r *Regex) scan(view *input.View, stopAfterFirst bool) ([]Match, int) {
	n := view.Len()
	// Saved must always hold all ten groups (capture 0 plus back-references
	// %1-%9), independent of how many groups the pattern actually opens: a
	// back-reference to an unopened group must read its slot as unset
	// (the -1 sentinel), never index past the end of Saved.
	slotCount := 2 * max(r.prog.CaptureCount+1, 10)
	ctx := vm.NewContext(r.prog.Code, view, slotCount, 0, r.config.MaxRecursionDepth)

	var subjectBytes []byte
	if r.literal != nil && !r.prog.AnchorStart {
		subjectBytes = []byte(view.Subject())
	}

	var matches []Match
	start := 0
	for start <= n {
		if r.prog.AnchorStart && start != 0 {
			break
		}

		if subjectBytes != nil {
			nextByte := r.literal.Find(subjectBytes, view.ByteIndex(start))
			if nextByte < 0 {
				break
			}
			start = view.CodePointIndex(nextByte)
			if start > n {
				break
			}
		}

		ctx.Reset(start)
		if vm.Exec(ctx) {
			if r.prog.AnchorEnd && ctx.SP != n {
				start++
				if r.prog.AnchorStart {
					break
				}
				continue
			}

			matches = append(matches, buildMatch(view, r.prog.CaptureCount, ctx.Saved))

			if r.prog.AnchorStart {
				break
			}
			if ctx.Saved[0] == ctx.Saved[1] {
				start = ctx.SP + 1
			} else {
				start = ctx.SP
			}
		} else {
			if r.prog.AnchorStart {
				break
			}
			start++
		}

		if stopAfterFirst && len(matches) > 0 {
			break
		}
	}
	return matches, start
}

// buildMatch translates a successful attempt's code-point save slots into
// the byte-range Match value callers see (spec §4.5's last paragraph).
func buildMatch(view *input.View, captureCount int, saved []int) Match {
	ranges := make([][2]int, captureCount+1)
	for n := range ranges {
		lo, hi := saved[2*n], saved[2*n+1]
		ranges[n] = [2]int{view.ByteIndex(lo), view.ByteIndex(hi)}
	}
	return Match{subject: view.Subject(), ranges: ranges}
}
