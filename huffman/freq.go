package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FreqTable maps each symbol to its number of occurrences.
type FreqTable map[Symbol]uint64

// CountRunes builds a frequency table from text.
func CountRunes(text string) FreqTable {
	ft := make(FreqTable)
	for _, r := range text {
		ft[r]++
	}
	return ft
}

// Symbols returns the distinct symbols in ascending order.  Every place
// that needs a deterministic walk over the table goes through this.
func (ft FreqTable) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(ft))
	for r := range ft {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Total returns the total number of symbol occurrences.
func (ft FreqTable) Total() uint64 {
	var total uint64
	for _, n := range ft {
		total += n
	}
	return total
}

// marshal renders the table as a single header line: code points and
// decimal counts in ascending symbol order, e.g. `U+0041=6 U+0042=3`.
// The encoding never contains a newline, so the header stays one line
// for any symbol, including '\n' itself.
func (ft FreqTable) marshal() string {
	var sb strings.Builder
	for i, r := range ft.Symbols() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%U=%d", r, ft[r])
	}
	return sb.String()
}

// parseFreqTable parses a header line produced by marshal.  An empty
// line yields an empty table.
func parseFreqTable(line string) (FreqTable, error) {
	ft := make(FreqTable)
	line = strings.TrimSuffix(line, "\n")
	if line == "" {
		return ft, nil
	}
	var total uint64
	for _, field := range strings.Fields(line) {
		entry, ok := strings.CutPrefix(field, "U+")
		if !ok {
			return nil, fmt.Errorf("%w: entry %q does not start with U+", ErrHeaderFormat, field)
		}
		point, count, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: entry %q has no count", ErrHeaderFormat, field)
		}
		cp, err := strconv.ParseUint(point, 16, 32)
		if err != nil || !utf8.ValidRune(rune(cp)) {
			return nil, fmt.Errorf("%w: entry %q has a bad code point", ErrHeaderFormat, field)
		}
		n, err := strconv.ParseUint(count, 10, 64)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: entry %q has a bad count", ErrHeaderFormat, field)
		}
		sym := Symbol(cp)
		if _, dup := ft[sym]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrHeaderFormat, sym)
		}
		if total+n < total {
			return nil, fmt.Errorf("%w: symbol counts overflow", ErrHeaderFormat)
		}
		total += n
		ft[sym] = n
	}
	return ft, nil
}
