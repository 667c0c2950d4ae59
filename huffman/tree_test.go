package huffman

import (
	"reflect"
	"testing"
)

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil)
	if !tree.Empty() {
		t.Errorf("expected empty tree, got %d nodes", len(tree.nodes))
	}
	book := tree.Codebook()
	if len(book) != 0 {
		t.Errorf("expected empty codebook, got %d codes", len(book))
	}
}

func TestBuildTree_NodeCounts(t *testing.T) {
	tree := BuildTree(CountRunes("AAAAAABBBCCD"))
	if leaves := tree.Leaves(); leaves != 4 {
		t.Errorf("expected 4 leaves, got %d", leaves)
	}
	// distinct leaves plus (distinct-1) internal nodes
	if total := len(tree.nodes); total != 7 {
		t.Errorf("expected 7 nodes, got %d", total)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree(FreqTable{'A': 5})
	if len(tree.nodes) != 1 {
		t.Errorf("expected a lone leaf, got %d nodes", len(tree.nodes))
	}
	book := tree.Codebook()
	expect := MakeCode(1, 0)
	if actual := book['A']; actual != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

// The classic worked example: code lengths must come out as 4,4,3,3,3,1.
func TestCodebook_Sizes(t *testing.T) {
	ft := FreqTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	book := BuildTree(ft).Codebook()

	expectSizes := map[Symbol]byte{'a': 4, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1}
	for sym, size := range expectSizes {
		if actual := book[sym].Size; actual != size {
			t.Errorf("wrong size for %q:\n\texpect: %d\n\tactual: %d", sym, size, actual)
		}
	}
}

func TestBuildTree_DeterministicTieBreak(t *testing.T) {
	// Every frequency ties, so the shape is decided entirely by the
	// tie-break rule.  Two builds must agree code for code.
	ft := FreqTable{'a': 3, 'b': 3, 'c': 3, 'd': 3, 'e': 3, 'f': 3, 'g': 3, 'h': 3}
	first := BuildTree(ft).Codebook()
	second := BuildTree(ft).Codebook()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tie-break is not deterministic:\n\tfirst:  %v\n\tsecond: %v", first, second)
	}
}

func TestCodebook_PrefixFree(t *testing.T) {
	testData := []string{
		"AAAAAABBBCCD",
		"the quick brown fox jumps over the lazy dog",
		"abcdefghijklmnopqrstuvwxyz",
		"aabbbbccccccccdddddddddddddddd",
	}
	for _, text := range testData {
		t.Run(text[:8], func(t *testing.T) {
			book := BuildTree(CountRunes(text)).Codebook()
			for symA, codeA := range book {
				for symB, codeB := range book {
					if symA == symB {
						continue
					}
					if codeA.IsPrefixOf(codeB) {
						t.Errorf("code %s for %q is a prefix of code %s for %q", codeA, symA, codeB, symB)
					}
				}
			}
		})
	}
}

func TestCodebook_FreshMapPerCall(t *testing.T) {
	tree := BuildTree(CountRunes("AAAAAABBBCCD"))
	first := tree.Codebook()
	delete(first, 'A')
	second := tree.Codebook()
	if _, ok := second['A']; !ok {
		t.Error("codebook state leaked between calls")
	}
}
