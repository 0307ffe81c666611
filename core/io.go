package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Load reads a graph in the plain-text exchange format: a node count and an
// edge count, followed by that many "source target weight" triples. Tokens
// are separated by any whitespace. A negative weight in the input deletes,
// exactly as SetEdge does.
//
// Errors wrap ErrBadFormat for malformed or truncated input, and the
// NewGraph/SetEdge sentinels for out-of-range sizes, ids or weights.
func Load(r io.Reader, opts ...GraphOption) (Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tok := 0

	nextInt := func(what string) (int, error) {
		tok++
		if !sc.Scan() {
			return 0, scanErr(sc, tok, what)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: token %d (%s): %v", ErrBadFormat, tok, what, err)
		}

		return n, nil
	}
	nextFloat := func(what string) (float64, error) {
		tok++
		if !sc.Scan() {
			return 0, scanErr(sc, tok, what)
		}
		f, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: token %d (%s): %v", ErrBadFormat, tok, what, err)
		}

		return f, nil
	}

	size, err := nextInt("node count")
	if err != nil {
		return nil, err
	}
	count, err := nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrBadFormat, count)
	}
	g, err := NewGraph(size, opts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		u, err := nextInt("source")
		if err != nil {
			return nil, err
		}
		v, err := nextInt("target")
		if err != nil {
			return nil, err
		}
		w, err := nextFloat("weight")
		if err != nil {
			return nil, err
		}
		if err = g.SetEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

func scanErr(sc *bufio.Scanner, tok int, what string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: token %d (%s): %v", ErrBadFormat, tok, what, err)
	}

	return fmt.Errorf("%w: unexpected end of input at token %d (%s)", ErrBadFormat, tok, what)
}

// Write emits g in the format Load reads: the node count and edge count,
// then one "source target weight" line per edge, sources ascending and
// targets ascending within a source.
func Write(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Size(), g.EdgeCount())
	for u := 0; u < g.Size(); u++ {
		succ, err := g.Successors(u)
		if err != nil {
			return err
		}
		for _, e := range succ {
			fmt.Fprintf(bw, "%d %d %s\n", e.Source, e.Target, strconv.FormatFloat(e.Weight, 'g', -1, 64))
		}
	}

	return bw.Flush()
}

// Fprint writes a human-readable dump of g: the node count, then one line
// per node with its out/in degree and its out-edges as [weight, source, target].
func Fprint(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Node count : %d (%s, %d edges)\n\n", g.Size(), g.Backing(), g.EdgeCount())
	for u := 0; u < g.Size(); u++ {
		out, _ := g.OutDegree(u)
		in, _ := g.InDegree(u)
		fmt.Fprintf(bw, "Node %d (d+%d) (d-%d)", u, out, in)
		succ, err := g.Successors(u)
		if err != nil {
			return err
		}
		for _, e := range succ {
			fmt.Fprintf(bw, " [%s, %d, %d]", strconv.FormatFloat(e.Weight, 'g', -1, 64), e.Source, e.Target)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
