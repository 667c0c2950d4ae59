package huffman

import "errors"

// Error kinds surfaced by Decode.  Wrapped errors carry detail; use
// errors.Is to classify.
var (
	// ErrHeaderFormat reports a missing or unparsable artifact header.
	ErrHeaderFormat = errors.New("huffman: malformed header")

	// ErrTruncatedStream reports a body that runs out of bits in the
	// middle of a code, before the walk reaches a leaf.
	ErrTruncatedStream = errors.New("huffman: truncated bit stream")

	// ErrEncodingMismatch reports text that is not valid UTF-8.
	ErrEncodingMismatch = errors.New("huffman: text is not valid UTF-8")
)
