// Package entropy provides the comparison baselines for the codecs: a
// Shannon-entropy estimate and the fixed-length eight-bit cost.  Both
// are pure measurements; neither participates in codec correctness.
package entropy

import "math"

// Shannon returns the Shannon entropy of text in bits per symbol, where
// a symbol is one Unicode code point.  Empty text has zero entropy.
func Shannon(text string) float64 {
	if text == "" {
		return 0
	}
	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}
	var h float64
	for _, count := range counts {
		p := float64(count) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// TheoreticalMinBits returns the entropy-implied lower bound, in bits,
// for coding the whole text.
func TheoreticalMinBits(text string) float64 {
	n := 0
	for range text {
		n++
	}
	return Shannon(text) * float64(n)
}

// FixedLengthBits returns the cost of the fixed-length baseline: every
// encoded byte at 8 bits.
func FixedLengthBits(text string) int64 {
	return int64(len(text)) * 8
}
