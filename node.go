package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman code tree.  It is either a *Leaf or an
// *Internal; no other implementations exist.
type Node interface {
	// Weight is the total frequency of every Symbol beneath this Node.
	Weight() uint64

	isNode()
}

// Leaf is a Node that carries exactly one Symbol.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// NewLeaf constructs a Leaf.
func NewLeaf(sym Symbol, weight uint64) *Leaf {
	assert.Assertf(sym.IsValid(), "invalid symbol %d", sym)
	return &Leaf{symbol: sym, weight: weight}
}

// Symbol returns the Symbol carried by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the frequency of this Leaf's Symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  Following the left child
// emits a Zero bit, following the right child emits a One bit.
type Internal struct {
	left   Node
	right  Node
	weight uint64
}

// NewInternal constructs an Internal node that takes ownership of both
// children.  Its weight is the sum of the children's weights.
func NewInternal(left Node, right Node) *Internal {
	assert.Assertf(!isNilNode(left), "left child is nil")
	assert.Assertf(!isNilNode(right), "right child is nil")
	a, b := left.Weight(), right.Weight()
	assert.Assertf(a+b >= a, "weight overflows uint64: %d + %d", a, b)
	return &Internal{left: left, right: right, weight: a + b}
}

// Left returns the child reached by a Zero bit.
func (node *Internal) Left() Node {
	return node.left
}

// Right returns the child reached by a One bit.
func (node *Internal) Right() Node {
	return node.right
}

// Child returns Left() for Zero and Right() for One.
func (node *Internal) Child(bit Bit) Node {
	if bit == Zero {
		return node.left
	}
	return node.right
}

// Weight returns the sum of the children's weights.
func (node *Internal) Weight() uint64 {
	return node.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

func isNilNode(node Node) bool {
	switch x := node.(type) {
	case nil:
		return true
	case *Leaf:
		return x == nil
	case *Internal:
		return x == nil
	default:
		return false
	}
}
