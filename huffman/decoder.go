package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

// Decode parses an artifact produced by Encode and reconstructs the
// original text.  Both header lines are parsed before any body byte is
// interpreted: a malformed table or padding count is ErrHeaderFormat,
// never a silent default.  A body that ends in the middle of a code is
// ErrTruncatedStream.
func Decode(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	tableLine, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: missing frequency table line", ErrHeaderFormat)
	}
	ft, err := parseFreqTable(tableLine)
	if err != nil {
		return "", err
	}

	paddingLine, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: missing padding line", ErrHeaderFormat)
	}
	paddingText := strings.TrimSuffix(paddingLine, "\n")
	padding, err := strconv.ParseUint(paddingText, 10, 8)
	if err != nil || padding > 7 {
		return "", fmt.Errorf("%w: bad padding count %q", ErrHeaderFormat, paddingText)
	}

	// An absent table means the original text was empty, so there is
	// no tree to walk; any body data is unaccounted for.
	if len(ft) == 0 {
		stray, err := io.ReadAll(br)
		if err != nil {
			return "", err
		}
		if len(stray) != 0 {
			return "", fmt.Errorf("%w: %d body bytes but no frequency table", ErrHeaderFormat, len(stray))
		}
		return "", nil
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return "", err
	}
	bodyBits := int64(len(body))*8 - int64(padding)
	if bodyBits < 0 {
		return "", fmt.Errorf("%w: padding %d exceeds body length", ErrTruncatedStream, padding)
	}

	// Every code costs at least one bit, so the body bounds the symbol
	// count a valid header can declare.  Checking before any allocation
	// keeps a hostile count from sizing buffers.
	total := ft.Total()
	if total > uint64(bodyBits) {
		return "", fmt.Errorf("%w: header declares %d symbols but body holds %d bits", ErrTruncatedStream, total, bodyBits)
	}

	// Single distinct symbol: no tree walk, just the recorded count.
	if len(ft) == 1 {
		var sb strings.Builder
		for sym, count := range ft {
			for i := uint64(0); i < count; i++ {
				sb.WriteRune(sym)
			}
		}
		return sb.String(), nil
	}

	// Rebuilding from the recovered table yields the identical tree the
	// encoder used, because BuildTree's tie-break is deterministic.
	tree := BuildTree(ft)
	bits := bitio.NewReader(bytes.NewReader(body))

	var sb strings.Builder
	sb.Grow(len(body))
	var produced uint64
	idx := tree.root
	for consumed := int64(0); consumed < bodyBits; consumed++ {
		right, err := bits.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: body ended after %d bits", ErrTruncatedStream, consumed)
		}
		if right {
			idx = tree.nodes[idx].right
		} else {
			idx = tree.nodes[idx].left
		}
		if tree.nodes[idx].leaf {
			sb.WriteRune(tree.nodes[idx].sym)
			produced++
			idx = tree.root
		}
	}
	if idx != tree.root {
		return "", fmt.Errorf("%w: bit stream ends mid-code", ErrTruncatedStream)
	}
	if produced != total {
		return "", fmt.Errorf("%w: decoded %d symbols, header declares %d", ErrTruncatedStream, produced, total)
	}
	return sb.String(), nil
}

// DecodeFile reads and decompresses the named artifact file.  The file
// is released on every return path.
func DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Decode(f)
}
