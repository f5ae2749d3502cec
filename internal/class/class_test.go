package class

import "testing"

func TestIsMatchedLiteral(t *testing.T) {
	c := Lit('a')
	if !IsMatched(c, 'a') {
		t.Error("expected 'a' to match Lit('a')")
	}
	if IsMatched(c, 'b') {
		t.Error("expected 'b' not to match Lit('a')")
	}
}

func TestIsMatchedRange(t *testing.T) {
	c := Rng('a', 'z')
	for _, r := range []rune{'a', 'm', 'z'} {
		if !IsMatched(c, r) {
			t.Errorf("expected %q to match Rng('a','z')", r)
		}
	}
	for _, r := range []rune{'A', '0', '{'} {
		if IsMatched(c, r) {
			t.Errorf("expected %q not to match Rng('a','z')", r)
		}
	}
}

func TestIsMatchedNamed(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		positive bool
		r        rune
		want     bool
	}{
		{"digit positive matches 5", Digit, true, '5', true},
		{"digit positive rejects a", Digit, true, 'a', false},
		{"digit negative matches a", Digit, false, 'a', true},
		{"letter positive matches unicode letter", Letter, true, 'ñ', true},
		{"alphanumeric positive matches digit", AlphaNumeric, true, '7', true},
		{"alphanumeric positive matches underscore", AlphaNumeric, true, '_', true},
		{"whitespace positive matches tab", Whitespace, true, '\t', true},
		{"control positive matches NUL", ControlChar, true, 0, true},
		{"control positive rejects space", ControlChar, true, ' ', false},
		{"printable positive matches letter", Printable, true, 'x', true},
		{"printable positive rejects space", Printable, true, ' ', false},
		{"punctuation positive matches comma", Punctuation, true, ',', true},
		{"hexadecimal positive matches f", Hexadecimal, true, 'f', true},
		{"hexadecimal positive rejects g", Hexadecimal, true, 'g', false},
		{"lowercase positive matches a", Lowercase, true, 'a', true},
		{"lowercase positive rejects A", Lowercase, true, 'A', false},
		{"uppercase positive matches A", Uppercase, true, 'A', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Named(tt.kind, tt.positive)
			if got := IsMatched(c, tt.r); got != tt.want {
				t.Errorf("IsMatched(%v, %q) = %v, want %v", tt.kind, tt.r, got, tt.want)
			}
		})
	}
}

func TestIsMatchedSetAndUnset(t *testing.T) {
	set := Class{Kind: Set, Children: []Class{Lit('a'), Rng('0', '9')}}
	if !IsMatched(set, 'a') || !IsMatched(set, '5') {
		t.Error("expected set to match its members")
	}
	if IsMatched(set, 'z') {
		t.Error("expected set not to match a non-member")
	}

	unset := Class{Kind: Unset, Children: []Class{Lit('a'), Rng('0', '9')}}
	if IsMatched(unset, 'a') || IsMatched(unset, '5') {
		t.Error("expected unset to reject its members")
	}
	if !IsMatched(unset, 'z') {
		t.Error("expected unset to match a non-member")
	}
}

func TestAny(t *testing.T) {
	c := Class{Kind: Any}
	if !IsMatched(c, 'x') || !IsMatched(c, '\n') {
		t.Error("expected Any to match every code point")
	}
}
