package compare

import (
	"strings"
	"testing"
)

func TestRLE(t *testing.T) {
	testData := []struct {
		name   string
		text   string
		expect string
	}{
		{"empty", "", ""},
		{"single run", "AAAB", "A3B1"},
		{"concrete scenario", "AAAAAABBBCCD", "A6B3C2D1"},
		{"one character", "A", "A1"},
		{"long run", strings.Repeat("A", 500), "A500"},
		{"no runs", "ABC", "A1B1C1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := RLE(row.text); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}
