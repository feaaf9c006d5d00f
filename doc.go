// Package huffman implements Huffman coding: it counts the Symbols of an
// input, builds a prefix code tree from the counts, assigns each Symbol a
// Code, and encodes and decodes bit Streams with that tree.
//
// The pipeline is:
//
//     freqs := Count(seq)
//     root, err := Build(freqs)
//     table, err := Generate(root)
//     stream, err := Encode(seq, table)
//     out, err := Decode(stream, root)
//
// Codec bundles these steps for a single input.
//
// Build is deterministic: equal weights are broken by the order in which
// Symbols were first added to the FrequencyMap, so the same FrequencyMap
// always yields the same tree and the same CodeTable.
//
// Single-symbol inputs: when only one Symbol occurs, Build returns a lone
// *Leaf.  Generate assigns that Symbol the one-bit Code "0", so an input of
// n copies encodes to n Zero bits, and Decode maps each Zero bit back to the
// Symbol.  A One bit in such a Stream is reported as malformed.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
