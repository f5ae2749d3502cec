package input

import "testing"

func TestViewASCII(t *testing.T) {
	v := New("hello", true)
	if v.Len() != 5 {
		t.Errorf("Len() = %d, want 5", v.Len())
	}
	for i, want := range []rune("hello") {
		r, ok := v.At(i)
		if !ok || r != want {
			t.Errorf("At(%d) = %q,%v want %q,true", i, r, ok, want)
		}
	}
	if got := v.ByteIndex(5); got != 5 {
		t.Errorf("ByteIndex(5) = %d, want 5", got)
	}
}

func TestViewUnicode(t *testing.T) {
	// "мЫ" has 2 code points, each 2 bytes in UTF-8.
	v := New("мЫ", true)
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if got := v.ByteIndex(0); got != 0 {
		t.Errorf("ByteIndex(0) = %d, want 0", got)
	}
	if got := v.ByteIndex(1); got != 2 {
		t.Errorf("ByteIndex(1) = %d, want 2", got)
	}
	if got := v.ByteIndex(2); got != 4 {
		t.Errorf("ByteIndex(2) = %d, want 4 (one past end)", got)
	}
}

func TestViewASCIIFastPathDisabled(t *testing.T) {
	v := New("abc", false)
	if v.ascii {
		t.Error("expected ascii fast path to be unused when disabled")
	}
	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
}

func TestViewOutOfRange(t *testing.T) {
	v := New("ab", true)
	if _, ok := v.At(-1); ok {
		t.Error("At(-1) should report not ok")
	}
	if _, ok := v.At(2); ok {
		t.Error("At(Len()) should report not ok")
	}
}

func TestViewCodePointIndex(t *testing.T) {
	v := New("мЫ", true)
	if got := v.CodePointIndex(0); got != 0 {
		t.Errorf("CodePointIndex(0) = %d, want 0", got)
	}
	if got := v.CodePointIndex(2); got != 1 {
		t.Errorf("CodePointIndex(2) = %d, want 1", got)
	}
	if got := v.CodePointIndex(4); got != 2 {
		t.Errorf("CodePointIndex(4) = %d, want 2 (Len())", got)
	}
}

func TestViewCodePointIndexASCII(t *testing.T) {
	v := New("abc", true)
	if got := v.CodePointIndex(2); got != 2 {
		t.Errorf("CodePointIndex(2) = %d, want 2", got)
	}
}
