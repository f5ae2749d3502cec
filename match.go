package luapattern

// Match is the result of one successful attempt: a borrowed subject string
// plus a list of byte ranges, one per capture (spec §4.6). Index 0 is
// always the whole-match span. No substring is materialized until the
// caller asks for one.
//
// Grounded on original_source/src/regex.rs's Match type and this port's
// sibling engine's meta/match.go (the "store ranges, slice lazily" shape),
// adapted for Lua's position-capture convention: a range with Start == End
// is a position capture, matching the group's byte offset rather than
// naming a substring.
type Match struct {
	subject string
	ranges  [][2]int // ranges[n] is the nth capture's [start, end) byte range
}

// Range returns the byte-offset span of capture n (0 is the whole match).
// ok is false if n is out of range for this match (n > NumSubexp()).
func (m Match) Range(n int) (start, end int, ok bool) {
	if n < 0 || n >= len(m.ranges) {
		return 0, 0, false
	}
	r := m.ranges[n]
	return r[0], r[1], true
}

// Group returns the text of capture n. A position capture (Lua's `()`,
// where Start == End) returns "" with isPosition true; callers that need
// the position itself should use Range.
func (m Match) Group(n int) (text string, isPosition bool, ok bool) {
	start, end, ok := m.Range(n)
	if !ok {
		return "", false, false
	}
	if start == end {
		return "", true, true
	}
	return m.subject[start:end], false, true
}

// String returns the whole-match substring (capture 0).
func (m Match) String() string {
	start, end, ok := m.Range(0)
	if !ok {
		return ""
	}
	return m.subject[start:end]
}

// NumCaptures returns the number of explicit capture groups in this match,
// not counting capture 0 (the whole match).
func (m Match) NumCaptures() int {
	return len(m.ranges) - 1
}
