package core_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Excalibur888/PotooMaps/core"
)

const sampleGraph = `4 5
0 1 1.5
0 2 4
1 2 2
2 3 1
3 0 0.5
`

func TestLoad(t *testing.T) {
	for _, b := range []core.Backing{core.BackingList, core.BackingMatrix} {
		g, err := core.Load(strings.NewReader(sampleGraph), core.WithBacking(b))
		require.NoError(t, err)
		require.Equal(t, 4, g.Size())
		require.Equal(t, 5, g.EdgeCount())
		require.Equal(t, b, g.Backing())
		w, err := g.Weight(3, 0)
		require.NoError(t, err)
		require.Equal(t, 0.5, w)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":        {"", core.ErrBadFormat},
		"truncated":    {"3 2\n0 1 1\n1", core.ErrBadFormat},
		"not a number": {"3 1\n0 x 1", core.ErrBadFormat},
		"bad weight":   {"3 1\n0 1 abc", core.ErrBadFormat},
		"neg count":    {"3 -1", core.ErrBadFormat},
		"zero size":    {"0 0", core.ErrBadSize},
		"out of range": {"2 1\n0 2 1", core.ErrNodeOutOfRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := core.Load(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFprint(t *testing.T) {
	g, err := core.Load(strings.NewReader("3 2\n0 1 1.5\n0 2 3\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, core.Fprint(&buf, g))
	require.Equal(t, "Node count : 3 (list, 2 edges)\n\n"+
		"Node 0 (d+2) (d-0) [1.5, 0, 1] [3, 0, 2]\n"+
		"Node 1 (d+0) (d-1)\n"+
		"Node 2 (d+0) (d-1)\n", buf.String())
}

func TestWrite(t *testing.T) {
	g, err := core.Load(strings.NewReader(sampleGraph), core.WithBacking(core.BackingMatrix))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, core.Write(&buf, g))
	require.Equal(t, "4 5\n0 1 1.5\n0 2 4\n1 2 2\n2 3 1\n3 0 0.5\n", buf.String())

	back, err := core.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), back.EdgeCount())
	w, _ := back.Weight(0, 1)
	require.Equal(t, 1.5, w)
}
