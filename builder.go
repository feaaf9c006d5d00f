package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build constructs a Huffman code tree from a FrequencyMap, using the greedy
// lowest-weight-first merge.  Symbols with a count of zero are left out of
// the tree.
//
// Ties are broken by age: the leaves are numbered in FrequencyMap order, each
// merged node is numbered after every node that exists before it, and among
// nodes of equal weight the lower number is removed first.  Of the two nodes
// removed in each step, the first becomes the right child (bit One) and the
// second becomes the left child (bit Zero).
//
// If exactly one Symbol has a non-zero count, the returned tree is a lone
// *Leaf.  See the package documentation for how such trees are coded.
//
// Build returns ErrEmptyInput if no Symbol has a non-zero count.
//
func Build(freqs FrequencyMap) (Node, error) {
	items := make([]nodeAndSeq, 0, freqs.Len())
	var seq uint64
	var total uint64
	for _, sym := range freqs.order {
		freq := freqs.counts[sym]
		if freq == 0 {
			continue
		}
		items = append(items, nodeAndSeq{NewLeaf(sym, freq), seq})
		seq++
		total += freq
	}

	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	h := nodeHeap{items}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(b.node, a.node), seq})
		seq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(root.Weight() == total, "root weight %d != total frequency %d", root.Weight(), total)
	return root, nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
