package asciiopt

import (
	"strings"
	"testing"
)

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", []byte(""), true},
		{"short ascii", []byte("abc"), true},
		{"short non-ascii", []byte("aé"), false},
		{"exactly eight ascii", []byte("abcdefgh"), true},
		{"eight with high bit", []byte("abcdefg\x80"), false},
		{"long ascii with tail", []byte(strings.Repeat("a", 17)), true},
		{"long with non-ascii in tail", []byte(strings.Repeat("a", 16) + "é"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII(tt.data); got != tt.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
