// Package lzw implements Lempel-Ziv-Welch dictionary coding over raw
// bytes.  Encode emits an in-memory sequence of integer codes; turning
// those codes into a byte serialization is the caller's concern.
package lzw

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// firstCode is the first dictionary code available for multi-byte
// sequences.  Codes 0-255 are the single bytes themselves.
const firstCode = 256

// Error kinds surfaced by Decode and DecodeString.  Use errors.Is to
// classify.
var (
	// ErrCorruptStream reports a code that is neither in the dictionary
	// nor the next code about to be assigned.
	ErrCorruptStream = errors.New("lzw: corrupt code stream")

	// ErrEncodingMismatch reports decoded bytes that do not form valid
	// UTF-8 text.
	ErrEncodingMismatch = errors.New("lzw: decoded bytes are not valid UTF-8")
)

type encoder struct {
	dict map[string]uint32
	next uint32
}

func newEncoder() *encoder {
	e := &encoder{
		dict: make(map[string]uint32, firstCode),
		next: firstCode,
	}
	for i := 0; i < firstCode; i++ {
		e.dict[string([]byte{byte(i)})] = uint32(i)
	}
	return e
}

// encode scans data with a greedy longest match.  Each time the match
// can no longer be extended it performs one atomic step: emit the code
// for the match, insert the extended sequence under the next free code,
// and restart from the unmatched byte.  Keeping emission and insertion
// together is what keeps the decoder's dictionary isomorphic.
func (e *encoder) encode(data []byte) []uint32 {
	codes := make([]uint32, 0, len(data)/2+1)
	match := ""
	for _, b := range data {
		extended := match + string([]byte{b})
		if _, ok := e.dict[extended]; ok {
			match = extended
			continue
		}
		codes = append(codes, e.dict[match])
		e.dict[extended] = e.next
		e.next++
		match = string([]byte{b})
	}
	// End of input: flush whatever is left in the match.
	codes = append(codes, e.dict[match])
	return codes
}

// Encode compresses data into an ordered sequence of dictionary codes.
// The dictionary starts with the 256 single-byte sequences and grows by
// exactly one entry per emitted code (except the final flush), so after
// N input bytes it holds at most 256+N entries.
//
// Empty input yields no codes.
func Encode(data []byte) []uint32 {
	if len(data) == 0 {
		return nil
	}
	return newEncoder().encode(data)
}

// decode returns the expanded bytes together with the rebuilt
// dictionary, indexed by code.  Codes are assigned densely from 256, so
// a slice is the natural inverse of the encoder's map.
func decode(codes []uint32) ([]byte, [][]byte, error) {
	dict := make([][]byte, firstCode, firstCode+len(codes))
	for i := range dict {
		dict[i] = []byte{byte(i)}
	}

	first := codes[0]
	if first >= firstCode {
		return nil, nil, fmt.Errorf("%w: first code %d has no dictionary entry", ErrCorruptStream, first)
	}
	prev := dict[first]
	out := make([]byte, 0, len(codes)*2)
	out = append(out, prev...)

	for _, code := range codes[1:] {
		var seq []byte
		switch {
		case code < uint32(len(dict)):
			seq = dict[code]
		case code == uint32(len(dict)):
			// The cScSc case: the encoder defined this code one step
			// ago and reused it immediately, so its sequence is the
			// previous sequence plus that sequence's first byte.
			seq = append(append(make([]byte, 0, len(prev)+1), prev...), prev[0])
		default:
			return nil, nil, fmt.Errorf("%w: code %d is beyond next assignable code %d", ErrCorruptStream, code, len(dict))
		}
		out = append(out, seq...)

		entry := append(append(make([]byte, 0, len(prev)+1), prev...), seq[0])
		dict = append(dict, entry)
		prev = seq
	}
	return out, dict, nil
}

// Decode expands a code sequence produced by Encode back into the
// original bytes.  The decoder's dictionary mirrors the encoder's, one
// new entry per code processed; any code beyond the next assignable one
// is ErrCorruptStream.
//
// An empty code sequence yields empty output.
func Decode(codes []uint32) ([]byte, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	out, _, err := decode(codes)
	return out, err
}

// DecodeString decodes codes and interprets the result as UTF-8 text.
func DecodeString(codes []uint32) (string, error) {
	data, err := Decode(codes)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrEncodingMismatch
	}
	return string(data), nil
}

// EstimatedBits reports the size of the code sequence under a flat
// 12-bit-per-code serialization.  It exists for ratio reporting only;
// this package persists nothing.
func EstimatedBits(codes []uint32) int64 {
	return int64(len(codes)) * 12
}
