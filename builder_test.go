package huffman

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
)

func makeFrequencies(freqs ...uint64) FrequencyMap {
	var fm FrequencyMap
	for index, freq := range freqs {
		fm.Add(Symbol(index), freq)
	}
	return fm
}

func randomSymbols(rng *rand.Rand, length int, alphabet int) []Symbol {
	out := make([]Symbol, length)
	for index := range out {
		// Squaring skews the distribution toward low symbols, which
		// produces deeper trees than a uniform draw.
		x := rng.Float64()
		out[index] = Symbol(x * x * float64(alphabet))
	}
	return out
}

func TestBuild_TwoSymbols(t *testing.T) {
	root, err := Build(Count(SymbolsFromBytes([]byte("aaab"))))
	if err != nil {
		t.Fatal(err)
	}

	node, ok := root.(*Internal)
	if !ok {
		t.Fatalf("expected *Internal root, got %T", root)
	}
	if node.Weight() != 4 {
		t.Errorf("expected root weight 4, got %d", node.Weight())
	}

	left, ok := node.Left().(*Leaf)
	if !ok || left.Symbol() != 'a' || left.Weight() != 3 {
		t.Errorf("wrong left child: %# v", pretty.Formatter(node.Left()))
	}
	right, ok := node.Right().(*Leaf)
	if !ok || right.Symbol() != 'b' || right.Weight() != 1 {
		t.Errorf("wrong right child: %# v", pretty.Formatter(node.Right()))
	}
}

func TestBuild_Empty(t *testing.T) {
	if _, err := Build(FrequencyMap{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Build(Count(nil)); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Build(makeFrequencies(0, 0, 0)); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for all-zero counts, got %v", err)
	}
}

func TestBuild_SingleSymbol(t *testing.T) {
	root, err := Build(Count(SymbolsFromBytes([]byte("aaaa"))))
	if err != nil {
		t.Fatal(err)
	}
	leaf, ok := root.(*Leaf)
	if !ok {
		t.Fatalf("expected *Leaf root, got %T", root)
	}
	if leaf.Symbol() != 'a' || leaf.Weight() != 4 {
		t.Errorf("wrong leaf: symbol %d, weight %d", leaf.Symbol(), leaf.Weight())
	}
}

func TestBuild_SkipsZeroCounts(t *testing.T) {
	root, err := Build(makeFrequencies(0, 5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if leaf, ok := root.(*Leaf); !ok || leaf.Symbol() != 1 {
		t.Errorf("expected lone leaf for symbol 1, got %# v", pretty.Formatter(root))
	}
}

func TestBuild_Sizes(t *testing.T) {
	root, err := Build(makeFrequencies(5, 9, 12, 13, 16, 45))
	if err != nil {
		t.Fatal(err)
	}
	if root.Weight() != 100 {
		t.Errorf("expected root weight 100, got %d", root.Weight())
	}

	table, err := Generate(root)
	if err != nil {
		t.Fatal(err)
	}

	expect := map[Symbol]string{
		0: `"0011"`,
		1: `"0010"`,
		2: `"011"`,
		3: `"010"`,
		4: `"000"`,
		5: `"1"`,
	}
	actual := make(map[Symbol]string, len(table))
	for sym, hc := range table {
		actual[sym] = hc.String()
	}
	if diff := pretty.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("wrong codes: %v", diff)
	}
}

func TestBuild_TieBreakFollowsInsertionOrder(t *testing.T) {
	type testRow struct {
		input string
		a     string
		b     string
	}

	testData := [...]testRow{
		{input: "ab", a: `"1"`, b: `"0"`},
		{input: "ba", a: `"0"`, b: `"1"`},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			root, err := Build(Count(SymbolsFromBytes([]byte(row.input))))
			if err != nil {
				t.Fatal(err)
			}
			table, err := Generate(root)
			if err != nil {
				t.Fatal(err)
			}
			if actual := table['a'].String(); actual != row.a {
				t.Errorf("code for 'a': expected %s, got %s", row.a, actual)
			}
			if actual := table['b'].String(); actual != row.b {
				t.Errorf("code for 'b': expected %s, got %s", row.b, actual)
			}
		})
	}
}

func TestBuild_WeightConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		seq := randomSymbols(rng, 1+rng.Intn(500), 1+rng.Intn(64))
		root, err := Build(Count(seq))
		if err != nil {
			t.Fatal(err)
		}
		if root.Weight() != uint64(len(seq)) {
			t.Errorf("iteration %d: root weight %d != input length %d", iter, root.Weight(), len(seq))
		}
		checkShape(t, root)
	}
}

func checkShape(t *testing.T, node Node) {
	t.Helper()
	x, ok := node.(*Internal)
	if !ok {
		return
	}
	if x.Left() == nil || x.Right() == nil {
		t.Fatalf("internal node with a missing child")
	}
	if sum := x.Left().Weight() + x.Right().Weight(); sum != x.Weight() {
		t.Errorf("internal node weight %d != sum of children %d", x.Weight(), sum)
	}
	checkShape(t, x.Left())
	checkShape(t, x.Right())
}

func TestBuild_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 20; iter++ {
		fm := Count(randomSymbols(rng, 300, 40))

		root1, err := Build(fm)
		if err != nil {
			t.Fatal(err)
		}
		root2, err := Build(fm)
		if err != nil {
			t.Fatal(err)
		}

		table1, err := Generate(root1)
		if err != nil {
			t.Fatal(err)
		}
		table2, err := Generate(root2)
		if err != nil {
			t.Fatal(err)
		}
		if diff := pretty.Diff(table1, table2); len(diff) != 0 {
			t.Errorf("iteration %d: tables differ: %v", iter, diff)
		}
	}
}

func TestBuild_LowerFrequencyNeverShorter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		// Distinct frequencies, so there are no ties.
		n := 2 + rng.Intn(30)
		perm := rng.Perm(1000)[:n]
		freqs := make([]uint64, n)
		for index := range freqs {
			freqs[index] = uint64(perm[index] + 1)
		}

		root, err := Build(makeFrequencies(freqs...))
		if err != nil {
			t.Fatal(err)
		}
		table, err := Generate(root)
		if err != nil {
			t.Fatal(err)
		}

		for i := range freqs {
			for j := range freqs {
				if freqs[i] < freqs[j] && table[Symbol(i)].Size < table[Symbol(j)].Size {
					t.Errorf("iteration %d: symbol %d (freq %d) has code %s, shorter than symbol %d (freq %d) code %s",
						iter, i, freqs[i], table[Symbol(i)], j, freqs[j], table[Symbol(j)])
				}
			}
		}
	}
}
