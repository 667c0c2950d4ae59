package huffman

import "github.com/chronos-tachyon/assert"

// maxCodeBits bounds the depth of any code this package assigns.  A
// deeper code would require frequency counts growing faster than the
// Fibonacci sequence across more than 64 merges.
const maxCodeBits = 64

// Codebook maps each symbol to its prefix code.
type Codebook map[Symbol]Code

// Codebook derives the symbol-to-code mapping by a depth-first walk of
// the tree: '0' per left edge, '1' per right edge, codes assigned only
// at leaves, which keeps the book prefix-free by construction.
//
// The returned map is freshly allocated on every call and never shared
// between calls.  An empty tree yields an empty book.  A tree that is a
// single leaf yields the 1-bit code "0" for its symbol.
func (t *Tree) Codebook() Codebook {
	book := make(Codebook, t.Leaves())
	if t.Empty() {
		return book
	}
	if root := t.nodes[t.root]; root.leaf {
		book[root.sym] = MakeCode(1, 0)
		return book
	}
	t.walk(t.root, 0, 0, book)
	return book
}

func (t *Tree) walk(idx int32, bits uint64, depth byte, book Codebook) {
	n := t.nodes[idx]
	if n.leaf {
		book[n.sym] = MakeCode(depth, bits)
		return
	}
	assert.Assertf(depth < maxCodeBits, "code depth %d exceeds %d bits", depth+1, maxCodeBits)
	t.walk(n.left, bits<<1, depth+1, book)
	t.walk(n.right, bits<<1|1, depth+1, book)
}
