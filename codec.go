package huffman

// RawSymbolBits is the size of one unencoded Symbol, used by Stats.
const RawSymbolBits = 8

// Codec holds everything derived from one input: its frequencies, its tree,
// and the Encoder and Decoder built from them.  A Codec is read-only once
// constructed and is safe for concurrent use.
type Codec struct {
	freqs FrequencyMap
	root  Node
	table CodeTable
	enc   Encoder
	dec   Decoder
}

// NewCodec counts seq, builds its tree and generates its codes.  It returns
// ErrEmptyInput if seq is empty.
func NewCodec(seq []Symbol) (*Codec, error) {
	return NewCodecFromFrequencies(Count(seq))
}

// NewCodecFromFrequencies is like NewCodec, but starts from a FrequencyMap
// that the caller has already populated.
func NewCodecFromFrequencies(freqs FrequencyMap) (*Codec, error) {
	root, err := Build(freqs)
	if err != nil {
		return nil, err
	}

	table, err := Generate(root)
	if err != nil {
		return nil, err
	}

	c := &Codec{freqs: freqs, root: root, table: table}
	c.enc.Init(table)
	if err := c.dec.Init(root); err != nil {
		return nil, err
	}
	return c, nil
}

// Frequencies returns the FrequencyMap the tree was built from.
func (c *Codec) Frequencies() FrequencyMap {
	return c.freqs
}

// Root returns the root of the tree.
func (c *Codec) Root() Node {
	return c.root
}

// Table returns a copy of the CodeTable.
func (c *Codec) Table() CodeTable {
	out := make(CodeTable, len(c.table))
	for sym, hc := range c.table {
		out[sym] = hc
	}
	return out
}

// Encoder returns the Encoder for this Codec's CodeTable.
func (c *Codec) Encoder() Encoder {
	return c.enc
}

// Decoder returns the Decoder for this Codec's tree.
func (c *Codec) Decoder() Decoder {
	return c.dec
}

// Encode encodes seq with this Codec's CodeTable.
func (c *Codec) Encode(seq []Symbol) (Stream, error) {
	return c.enc.Encode(seq)
}

// Decode decodes stream against this Codec's tree.
func (c *Codec) Decode(stream Stream) ([]Symbol, error) {
	return c.dec.Decode(stream)
}

// Stats summarizes how well a Stream compresses the sequence it encodes.
type Stats struct {
	// Symbols is the length of the original sequence.
	Symbols int

	// RawBits is Symbols × RawSymbolBits.
	RawBits uint64

	// EncodedBits is the length of the encoded Stream.
	EncodedBits uint64
}

// MakeStats computes the Stats for a sequence and its encoding.
func MakeStats(seq []Symbol, stream Stream) Stats {
	return Stats{
		Symbols:     len(seq),
		RawBits:     uint64(len(seq)) * RawSymbolBits,
		EncodedBits: uint64(len(stream)),
	}
}

// Ratio returns EncodedBits / RawBits, or 0 if RawBits is 0.
func (s Stats) Ratio() float64 {
	if s.RawBits == 0 {
		return 0
	}
	return float64(s.EncodedBits) / float64(s.RawBits)
}
