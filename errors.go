package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Build when the FrequencyMap holds no
	// symbols with a non-zero count.
	ErrEmptyInput = errors.New("cannot build a Huffman tree from an empty frequency map")

	// ErrEmptyTree is returned when a nil root is given in place of a tree.
	ErrEmptyTree = errors.New("Huffman tree is empty")

	// ErrInvalidTree is returned when a hand-assembled tree assigns the
	// same symbol to more than one leaf.
	ErrInvalidTree = errors.New("invalid Huffman tree")

	// ErrCodeTooLong is returned by Generate when some leaf lies deeper
	// than MaxCodeSize.
	ErrCodeTooLong = errors.New("Huffman code is too long")

	// ErrUnknownSymbol matches every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("symbol has no Huffman code")

	// ErrMalformedStream matches every *MalformedStreamError.
	ErrMalformedStream = errors.New("malformed Huffman stream")
)

// UnknownSymbolError is returned by Encode when the input holds a Symbol that
// the CodeTable does not know about.
type UnknownSymbolError struct {
	Symbol Symbol
	Index  int
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %s at index %d has no Huffman code", symbolLabel(err.Symbol), err.Index)
}

// Is reports whether target is ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// MalformedStreamError is returned by Decode when the bit stream cannot be
// decoded against the tree.  Offset is the index of the first bit of the
// offending code.
type MalformedStreamError struct {
	Offset int
	Reason string
}

func (err *MalformedStreamError) Error() string {
	return fmt.Sprintf("malformed Huffman stream at bit %d: %s", err.Offset, err.Reason)
}

// Is reports whether target is ErrMalformedStream.
func (err *MalformedStreamError) Is(target error) bool {
	return target == ErrMalformedStream
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedStreamError)(nil)
)
