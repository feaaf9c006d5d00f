// Command huffdemo Huffman-codes a line of text and shows each step: the
// frequency table, the code table, the encoded bits, the decoded text and
// the compression ratio.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	huffman "github.com/chronos-tachyon/huffcodec"
	"github.com/chronos-tachyon/huffcodec/bitpack"
)

const usageStr = `Usage: huffdemo [OPTION]...
Huffman-code a string and report the codes, the encoded bits and the
compression ratio.

  -i, --input TEXT   code TEXT instead of reading standard input
  -f, --file FILE    read the text from FILE
  -o, --output FILE  also write the packed bit stream to FILE
  -D, --debug        dump the frequency map, code tree and encoder
  -v, --verbose      verbose mode
  -h, --help         give this help

With neither --input nor --file, one line is read from standard input.
`

type options struct {
	input    string
	hasInput bool
	file     string
	output   string
	debug    bool
}

// verbose is nil unless -v is given.
var verbose *log.Logger

func tracef(format string, v ...interface{}) {
	if verbose != nil {
		verbose.Output(2, fmt.Sprintf(format, v...))
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help      = pflag.BoolP("help", "h", false, "")
		input     = pflag.StringP("input", "i", "", "")
		file      = pflag.StringP("file", "f", "", "")
		output    = pflag.StringP("output", "o", "", "")
		debug     = pflag.BoolP("debug", "D", false, "")
		isVerbose = pflag.BoolP("verbose", "v", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if pflag.NArg() != 0 {
		log.Fatal("unexpected arguments; for help, type huffdemo -h")
	}
	if *isVerbose {
		verbose = log.New(os.Stderr, log.Prefix(), 0)
	}

	opts := options{
		input:  *input,
		file:   *file,
		output: *output,
		debug:  *debug,
	}
	pflag.Visit(func(f *pflag.Flag) {
		if f.Name == "input" {
			opts.hasInput = true
		}
	})
	if opts.hasInput && opts.file != "" {
		log.Fatal("--input and --file are mutually exclusive")
	}

	text, err := readText(opts, os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, text, opts); err != nil {
		log.Fatal(err)
	}
}

func readText(opts options, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	switch {
	case opts.hasInput:
		tracef("reading text from --input")
		return []byte(opts.input), nil
	case opts.file != "":
		tracef("reading text from %s", opts.file)
		data, err = os.ReadFile(opts.file)
	default:
		tracef("reading text from standard input")
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, err
	}
	return trimLine(data), nil
}

// trimLine keeps the first line of data, without its line terminator.
func trimLine(data []byte) []byte {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return bytes.TrimSuffix(data, []byte("\r"))
}

func run(w io.Writer, text []byte, opts options) error {
	seq := huffman.SymbolsFromBytes(text)
	if len(seq) == 0 {
		fmt.Fprintln(w, "Input is empty; there is nothing to encode.")
		return nil
	}

	codec, err := huffman.NewCodec(seq)
	if err != nil {
		return err
	}
	tracef("built tree over %d distinct symbols", codec.Frequencies().Len())

	if opts.debug {
		if _, err := codec.Frequencies().Dump(w); err != nil {
			return err
		}
		if _, err := codec.Encoder().Dump(w); err != nil {
			return err
		}
		if _, err := pretty.Fprintf(w, "%# v\n", codec.Root()); err != nil {
			return err
		}
	}

	freqs := codec.Frequencies()
	table := codec.Table()

	fmt.Fprintln(w, "Frequency Table:")
	for _, sym := range freqs.Symbols() {
		fmt.Fprintf(w, "%s: %d\n", label(sym), freqs.Count(sym))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, "Character\t| Frequency\t| Huffman Code")
	for _, sym := range freqs.Symbols() {
		fmt.Fprintf(tw, "%s\t| %d\t| %s\n", label(sym), freqs.Count(sym), table[sym])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stream, err := codec.Encode(seq)
	if err != nil {
		return err
	}
	decoded, err := codec.Decode(stream)
	if err != nil {
		return err
	}
	out, err := huffman.BytesFromSymbols(decoded)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nOriginal String: %s\n", text)
	fmt.Fprintf(w, "Encoded Binary Representation: %s\n", stream)
	fmt.Fprintf(w, "Decoded String: %s\n", out)
	if !bytes.Equal(text, out) {
		return fmt.Errorf("decoded string %q does not match original %q", out, text)
	}
	fmt.Fprintln(w, "The decoded string matches the original string.")

	if opts.output != "" {
		if err := writePacked(opts.output, stream); err != nil {
			return err
		}
	}

	stats := huffman.MakeStats(seq, stream)
	fmt.Fprintf(w, "\nOriginal Size: %d bits\n", stats.RawBits)
	fmt.Fprintf(w, "Compressed Size: %d bits\n", stats.EncodedBits)
	fmt.Fprintf(w, "Compression Ratio: %.2f%%\n", stats.Ratio()*100)
	return nil
}

// writePacked stores stream in path and reads it back to check it.
func writePacked(path string, stream huffman.Stream) error {
	data, err := bitpack.Marshal(stream)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return err
	}
	tracef("wrote %d bytes to %s", len(data), path)

	check, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	back, err := bitpack.Unmarshal(check)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if back.String() != stream.String() {
		return fmt.Errorf("%s: packed stream does not read back", path)
	}
	return nil
}

func label(sym huffman.Symbol) string {
	return fmt.Sprintf("%q", rune(sym))
}
