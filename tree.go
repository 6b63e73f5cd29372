package huffzip

import "container/heap"

// node is a Huffman tree node. A leaf has no children and carries a symbol.
// An internal node owns two children, except for the synthetic root wrapping
// a single-symbol block, which has only a left child.
type node struct {
	sym         byte
	freq        int
	left, right *node
}

// countFrequencies tallies byte occurrences in one block.
// The sum of the counts equals len(block).
func countFrequencies(block []byte) [256]int {
	var freq [256]int
	for _, b := range block {
		freq[b]++
	}
	return freq
}

// buildTree builds a Huffman tree over the symbols with nonzero frequency by
// repeatedly merging the two lowest-frequency subtrees.
// Ties are broken by insertion sequence so that builds are reproducible.
// A block with exactly one distinct symbol yields a synthetic root with the
// lone leaf as its left child, giving the symbol a code of length one.
// freq must have at least one nonzero entry.
func buildTree(freq *[256]int) *node {
	h := nodeHeap{}
	for sym, f := range freq {
		if f > 0 {
			push(&h, &node{sym: byte(sym), freq: f})
		}
	}
	if h.Len() == 1 {
		only := pop(&h)
		return &node{freq: only.freq, left: only}
	}
	for h.Len() > 1 {
		a := pop(&h)
		b := pop(&h)
		push(&h, &node{freq: a.freq + b.freq, left: a, right: b})
	}
	return pop(&h)
}

// extractCodes walks the tree and records a code for every leaf.
// Descending into the left child appends a 1-bit, the right child a 0-bit.
func extractCodes(root *node) [256]code {
	var codes [256]code
	var walk func(n *node, val uint64, length int)
	walk = func(n *node, val uint64, length int) {
		if n == nil {
			return
		}
		if n.left == nil && n.right == nil {
			codes[n.sym] = code{val: val, length: length}
			return
		}
		walk(n.left, val<<1|1, length+1)
		walk(n.right, val<<1, length+1)
	}
	walk(root, 0, 0)
	return codes
}

// Min-frequency priority queue of subtrees.

type heapItem struct {
	n   *node
	seq int
}

type nodeHeap struct {
	items []heapItem
	seq   int
}

func (h nodeHeap) Len() int { return len(h.items) }
func (h nodeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.n.freq != b.n.freq {
		return a.n.freq < b.n.freq
	}
	return a.seq < b.seq
}
func (h nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x interface{}) {
	h.items = append(h.items, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

func push(h *nodeHeap, n *node) {
	heap.Push(h, heapItem{n: n, seq: h.seq})
	h.seq++
}

func pop(h *nodeHeap) *node {
	return heap.Pop(h).(heapItem).n
}
