package corpus

import (
	"os"
	"strings"
	"testing"
)

func TestEqualDist(t *testing.T) {
	text := EqualDist(320)
	if len(text) != 320 {
		t.Fatalf("expected 320 characters, got %d", len(text))
	}
	if !strings.HasPrefix(text, "ABCDEFGHIJ") {
		t.Errorf("unexpected prefix %q", text[:10])
	}
	// 320 characters cycling a 32-symbol pattern: each symbol exactly
	// ten times.
	for _, r := range equalPattern {
		if count := strings.Count(text, string(r)); count != 10 {
			t.Errorf("expected 10 occurrences of %q, got %d", r, count)
		}
	}
}

func TestEqualDist_PartialCycle(t *testing.T) {
	text := EqualDist(33)
	if len(text) != 33 {
		t.Fatalf("expected 33 characters, got %d", len(text))
	}
	if text[32] != 'A' {
		t.Errorf("expected the cycle to restart at 'A', got %q", text[32])
	}
}

func TestRandomText_Deterministic(t *testing.T) {
	first := RandomText(1000, 42)
	second := RandomText(1000, 42)
	if first != second {
		t.Error("same seed produced different corpora")
	}
	other := RandomText(1000, 43)
	if first == other {
		t.Error("different seeds produced the same corpus")
	}
}

func TestRandomText_Alphabet(t *testing.T) {
	for _, r := range RandomText(1000, 42) {
		if !strings.ContainsRune(randomAlphabet, r) {
			t.Fatalf("character %q is outside the alphabet", r)
		}
	}
}

func TestSingleChar(t *testing.T) {
	text := SingleChar(500)
	if len(text) != 500 || strings.Count(text, "A") != 500 {
		t.Errorf("expected 500 'A's, got %q...", text[:10])
	}
}

func TestWriteFile(t *testing.T) {
	path := t.TempDir() + "/corpus.txt"
	if err := WriteFile(path, "hello"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("wrong contents:\n\texpect: hello\n\tactual: %s", data)
	}
}
