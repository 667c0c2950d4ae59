// Package compare runs the Huffman and LZW codecs (plus an RLE
// comparison) over a set of inputs, verifies exact round trips, and
// renders the ratio table against the entropy and fixed-length
// baselines.
package compare

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kwonghua/textpress/entropy"
	"github.com/kwonghua/textpress/huffman"
	"github.com/kwonghua/textpress/lzw"
)

// Input names one text for the comparison suite.
type Input struct {
	Name string
	Text string
}

// Result holds the measurements for one input.
type Result struct {
	Name         string
	OriginalBits int64
	HuffmanBits  int64
	LZWBits      int64
	RLEBits      int64
	EntropyBits  float64 // Shannon estimate, bits per symbol

	// Round-trip integrity: decoded output exactly equals the input.
	HuffmanOK bool
	LZWOK     bool
}

// HuffmanRatio is the original size over the Huffman size, or zero for
// an empty artifact.
func (r Result) HuffmanRatio() float64 { return ratio(r.OriginalBits, r.HuffmanBits) }

// LZWRatio is the original size over the estimated LZW size.
func (r Result) LZWRatio() float64 { return ratio(r.OriginalBits, r.LZWBits) }

// RLERatio is the original size over the RLE size.
func (r Result) RLERatio() float64 { return ratio(r.OriginalBits, r.RLEBits) }

func ratio(original, compressed int64) float64 {
	if compressed == 0 {
		return 0
	}
	return float64(original) / float64(compressed)
}

// Run measures every input.  The codecs themselves are strictly
// sequential, but the inputs are disjoint, so each gets its own
// goroutine.
func Run(inputs []Input) ([]Result, error) {
	results := make([]Result, len(inputs))
	var g errgroup.Group
	for i := range inputs {
		i := i
		g.Go(func() error {
			res, err := measure(inputs[i])
			if err != nil {
				return fmt.Errorf("%s: %w", inputs[i].Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func measure(in Input) (Result, error) {
	res := Result{
		Name:         in.Name,
		OriginalBits: entropy.FixedLengthBits(in.Text),
		EntropyBits:  entropy.Shannon(in.Text),
	}

	var artifact bytes.Buffer
	bits, err := huffman.Encode(&artifact, in.Text)
	if err != nil {
		return res, err
	}
	res.HuffmanBits = bits
	decoded, err := huffman.Decode(&artifact)
	if err != nil {
		return res, err
	}
	res.HuffmanOK = decoded == in.Text

	codes := lzw.Encode([]byte(in.Text))
	res.LZWBits = lzw.EstimatedBits(codes)
	plain, err := lzw.DecodeString(codes)
	if err != nil {
		return res, err
	}
	res.LZWOK = plain == in.Text

	res.RLEBits = entropy.FixedLengthBits(RLE(in.Text))
	return res, nil
}

// PrintTable renders the results: absolute bit counts, ratios against
// the 8-bit fixed-length baseline, the entropy estimate, and the
// round-trip integrity verdict for both codecs.
func PrintTable(w io.Writer, results []Result) {
	p := message.NewPrinter(language.English) // commas between thousands

	rule := strings.Repeat("-", 118)
	p.Fprintf(w, "%-18s | %14s | %13s | %6s | %13s | %6s | %13s | %6s | %9s | %s\n",
		"File", "Original(bits)",
		"Huffman(bits)", "Ratio",
		"LZW(bits)", "Ratio",
		"RLE(bits)", "Ratio",
		"H(bits/ch)", "Integrity")
	p.Fprintln(w, rule)
	for _, r := range results {
		verdict := "PASS"
		if !r.HuffmanOK || !r.LZWOK {
			verdict = "FAIL"
		}
		p.Fprintf(w, "%-18s | %14d | %13d | %6.2f | %13d | %6.2f | %13d | %6.2f | %9.4f | %s\n",
			r.Name, r.OriginalBits,
			r.HuffmanBits, r.HuffmanRatio(),
			r.LZWBits, r.LZWRatio(),
			r.RLEBits, r.RLERatio(),
			r.EntropyBits, verdict)
	}
	p.Fprintln(w, rule)
}
