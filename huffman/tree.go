package huffman

import "container/heap"

// nilNode marks an absent child in the node arena.
const nilNode = int32(-1)

// node is one arena record.  Leaves carry a symbol; internal nodes
// carry only the aggregate frequency.
type node struct {
	freq  uint64
	sym   Symbol
	left  int32
	right int32
	leaf  bool
}

// Tree is a Huffman prefix tree stored as an arena of indexed node
// records.  The zero-symbol tree has root == nilNode.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree constructs the prefix tree for a frequency table by
// repeatedly merging the two lowest-frequency nodes.  Ties are broken
// deterministically: the node created earliest wins.  Leaves are
// created in ascending symbol order and internal nodes in merge order,
// so encoder and decoder always rebuild the identical tree from the
// same table.
//
// An empty table yields an empty tree.  A single-symbol table yields a
// tree that is just one leaf.
func BuildTree(ft FreqTable) *Tree {
	t := &Tree{root: nilNode}
	if len(ft) == 0 {
		return t
	}

	t.nodes = make([]node, 0, 2*len(ft)-1)
	h := nodeHeap{arena: t, indexes: make([]int32, 0, len(ft))}
	for _, r := range ft.Symbols() {
		idx := t.add(node{freq: ft[r], sym: r, left: nilNode, right: nilNode, leaf: true})
		h.indexes = append(h.indexes, idx)
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)
		merged := t.add(node{
			freq:  t.nodes[a].freq + t.nodes[b].freq,
			left:  a,
			right: b,
		})
		heap.Push(&h, merged)
	}
	t.root = heap.Pop(&h).(int32)
	return t
}

func (t *Tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t.root == nilNode }

// Leaves returns the number of leaf nodes, one per distinct symbol.
func (t *Tree) Leaves() int {
	count := 0
	for _, n := range t.nodes {
		if n.leaf {
			count++
		}
	}
	return count
}

// nodeHeap orders arena indexes by (frequency, creation order).  Arena
// indexes increase in creation order, which makes the secondary key
// trivial and the heap's behavior fully deterministic.
type nodeHeap struct {
	arena   *Tree
	indexes []int32
}

func (h *nodeHeap) Len() int { return len(h.indexes) }

func (h *nodeHeap) Swap(i, j int) {
	h.indexes[i], h.indexes[j] = h.indexes[j], h.indexes[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.arena.nodes[h.indexes[i]], h.arena.nodes[h.indexes[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return h.indexes[i] < h.indexes[j]
}

func (h *nodeHeap) Push(x interface{}) {
	h.indexes = append(h.indexes, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.indexes) - 1
	x := h.indexes[last]
	h.indexes = h.indexes[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)
