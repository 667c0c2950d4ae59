// Package huffman implements frequency-sorted Huffman prefix coding
// over Unicode code points, together with a self-describing compressed
// artifact: a textual frequency-table header followed by an MSB-first
// bit-packed body.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
