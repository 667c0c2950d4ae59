// Package corpus generates the synthetic texts the comparison suite
// runs on: a repeated equal-distribution pattern, uniformly random
// text, and single-character runs.
package corpus

import (
	"os"
	"strings"
)

// equalPattern has 32 distinct characters, so a uniform distribution
// over it needs exactly 5 bits per symbol.
const equalPattern = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"

// randomAlphabet is a broad character set so no single character gets a
// high frequency: letters, digits, space and ASCII punctuation.
const randomAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	" " +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// EqualDist returns size characters cycling through a fixed 32-symbol
// pattern, giving every symbol a near-identical frequency.
func EqualDist(size int) string {
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(equalPattern[i%len(equalPattern)])
	}
	return sb.String()
}

// RandomText returns size characters picked uniformly from a broad
// alphabet.  The same seed always produces the same text.
func RandomText(size int, seed uint64) string {
	rng := newPRNG(deriveSeed(seed, "random"))
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(randomAlphabet[rng.intn(len(randomAlphabet))])
	}
	return sb.String()
}

// SingleChar returns n repetitions of 'A', the degenerate input that
// exercises the codecs' single-symbol paths.
func SingleChar(n int) string {
	return strings.Repeat("A", n)
}

// WriteFile writes text to path.  The file is released on every return
// path.
func WriteFile(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
