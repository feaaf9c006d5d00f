package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder walks a Huffman code tree to turn a Stream back into Symbols.
//
// A Decoder never modifies its tree, so a single Decoder may be used from
// multiple goroutines at once.
type Decoder struct {
	root Node
}

// Init initializes this Decoder with the tree that was used to encode.
func (d *Decoder) Init(root Node) error {
	if isNilNode(root) {
		return ErrEmptyTree
	}
	*d = Decoder{root: root}
	return nil
}

// Root returns the tree this Decoder was initialized with.
func (d Decoder) Root() Node {
	return d.root
}

// Decode decodes every bit of stream.  It returns a *MalformedStreamError if
// stream contains something other than Zero and One, or if it does not end
// exactly on a code boundary.
func (d Decoder) Decode(stream Stream) ([]Symbol, error) {
	switch root := d.root.(type) {
	case nil:
		return nil, ErrEmptyTree
	case *Leaf:
		return decodeSingle(stream, root)
	case *Internal:
		return decodeTree(stream, root)
	default:
		panic(fmt.Errorf("unknown Node type %T", d.root))
	}
}

func decodeSingle(stream Stream, leaf *Leaf) ([]Symbol, error) {
	out := make([]Symbol, 0, len(stream))
	for offset, bit := range stream {
		if bit != Zero {
			return nil, &MalformedStreamError{
				Offset: offset,
				Reason: fmt.Sprintf("bit %d is not valid for a single-symbol code", bit),
			}
		}
		out = append(out, leaf.symbol)
	}
	return out, nil
}

func decodeTree(stream Stream, root *Internal) ([]Symbol, error) {
	var out []Symbol
	current := root
	start := 0
	for offset, bit := range stream {
		if bit != Zero && bit != One {
			return nil, &MalformedStreamError{
				Offset: offset,
				Reason: fmt.Sprintf("invalid bit value %d", bit),
			}
		}

		switch x := current.Child(bit).(type) {
		case *Leaf:
			out = append(out, x.symbol)
			current = root
			start = offset + 1
		case *Internal:
			current = x
		default:
			panic(fmt.Errorf("unknown Node type %T", x))
		}
	}

	if start != len(stream) {
		return nil, &MalformedStreamError{
			Offset: start,
			Reason: fmt.Sprintf("stream ends %d bits into an incomplete code", len(stream)-start),
		}
	}
	if out == nil {
		out = []Symbol{}
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's tree to
// the given writer, one line per node in depth-first order.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.root != nil {
		dumpNode(&buf, d.root, Code{})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, node Node, path Code) {
	switch x := node.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "\t%s = Leaf{%s, %d}\n", path, symbolLabel(x.symbol), x.weight)
	case *Internal:
		fmt.Fprintf(buf, "\t%s = Internal{%d}\n", path, x.weight)
		if path.Size < MaxCodeSize {
			dumpNode(buf, x.left, path.Append(Zero))
			dumpNode(buf, x.right, path.Append(One))
		}
	}
}

// Decode is a convenience function that decodes stream with a one-off
// Decoder.
func Decode(stream Stream, root Node) ([]Symbol, error) {
	var d Decoder
	if err := d.Init(root); err != nil {
		return nil, err
	}
	return d.Decode(stream)
}
