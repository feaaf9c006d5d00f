package huffman

import (
	"fmt"
	"sort"
)

// CodeTable maps each Symbol in a tree to its Code.
type CodeTable map[Symbol]Code

// Generate walks the tree rooted at root and returns the Code of every leaf.
// The Code of a leaf is the path from the root to it: Zero for each step to a
// left child, One for each step to a right child.
//
// A lone *Leaf root receives the one-bit Code "0".
//
func Generate(root Node) (CodeTable, error) {
	if isNilNode(root) {
		return nil, ErrEmptyTree
	}

	table := make(CodeTable)
	if leaf, ok := root.(*Leaf); ok {
		table[leaf.symbol] = MakeCode(1, 0)
		return table, nil
	}

	if err := table.fill(root, Code{}); err != nil {
		return nil, err
	}
	return table, nil
}

func (table CodeTable) fill(node Node, prefix Code) error {
	switch x := node.(type) {
	case *Leaf:
		if _, found := table[x.symbol]; found {
			return fmt.Errorf("%w: symbol %s appears in more than one leaf", ErrInvalidTree, symbolLabel(x.symbol))
		}
		table[x.symbol] = prefix
		return nil

	case *Internal:
		if prefix.Size >= MaxCodeSize {
			return fmt.Errorf("%w: tree is deeper than %d levels", ErrCodeTooLong, MaxCodeSize)
		}
		if err := table.fill(x.left, prefix.Append(Zero)); err != nil {
			return err
		}
		return table.fill(x.right, prefix.Append(One))

	default:
		panic(fmt.Errorf("unknown Node type %T", node))
	}
}

// Symbols returns every Symbol in the table, in ascending order.
func (table CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
