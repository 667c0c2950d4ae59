package huffman

// Symbol represents one unit of compression: a single Unicode code
// point of the input text.
type Symbol = rune
