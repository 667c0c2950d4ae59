package huffman

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encode compresses text and writes the self-describing artifact to w:
// one frequency-table header line, one padding-count header line, then
// the packed body bits, most significant bit first.  It returns the
// number of body bits written after padding, always a multiple of 8.
//
// Empty text writes a header with an empty table, no body, and returns
// zero bits.  Text with a single distinct symbol is coded with the
// 1-bit code "0".  Text that is not valid UTF-8 is ErrEncodingMismatch.
func Encode(w io.Writer, text string) (int64, error) {
	if !utf8.ValidString(text) {
		return 0, fmt.Errorf("%w: refusing to encode", ErrEncodingMismatch)
	}

	ft := CountRunes(text)
	tree := BuildTree(ft)
	book := tree.Codebook()

	var rawBits int64
	for _, r := range text {
		rawBits += int64(book[r].Size)
	}
	padding := byte((8 - rawBits%8) % 8)

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d\n", ft.marshal(), padding); err != nil {
		return 0, err
	}
	if len(ft) == 0 {
		return 0, bw.Flush()
	}

	bits := bitio.NewWriter(bw)
	for _, r := range text {
		hc := book[r]
		if err := bits.WriteBits(hc.Bits, hc.Size); err != nil {
			return 0, err
		}
	}
	skipped, err := bits.Align()
	if err != nil {
		return 0, err
	}
	assert.Assertf(skipped == padding, "padding mismatch: wrote %d, declared %d", skipped, padding)
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return rawBits + int64(padding), nil
}

// EncodeFile compresses text into the named file.  The file is
// released on every return path.
func EncodeFile(path, text string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	bits, err := Encode(f, text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return bits, err
}
