// SPDX-License-Identifier: MIT

package gridtext_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itergrid/gridtext"
)

func TestParseInts_Rectangular(t *testing.T) {
	g, err := gridtext.ParseInts(strings.NewReader("1,2,3\n4,5,6\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Columns())
	rows, ok := g.RowCount()
	assert.True(t, ok)
	assert.Equal(t, 2, rows)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(g.All()))
	assert.Equal(t, []int{2, 5}, slices.Collect(g.Col(1)))
	assert.True(t, g.Indexable())
}

func TestParseInts_PartialLastRow(t *testing.T) {
	g, err := gridtext.ParseInts(strings.NewReader("1,2,3\n4,5\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(g.All()))
	assert.Equal(t, []int{3}, slices.Collect(g.Col(2)))
	_, ok := g.Get(2, 1)
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  []gridtext.Option
		err   error
		msg   string
	}{
		{name: "Empty", input: "", err: gridtext.ErrEmpty},
		{name: "BlankLines", input: "\n\n", err: gridtext.ErrEmpty},
		{name: "OnlyComments", input: "# a\n# b\n", opts: []gridtext.Option{gridtext.WithComment('#')}, err: gridtext.ErrEmpty},
		{name: "OnlyHeader", input: "a,b\n", opts: []gridtext.Option{gridtext.WithHeader()}, err: gridtext.ErrEmpty},
		{name: "ShortMiddle", input: "1,2,3\n4\n5,6,7\n", err: gridtext.ErrRaggedRow, msg: "line 2"},
		{name: "Long", input: "1,2\n3,4,5\n", err: gridtext.ErrRaggedRow, msg: "line 2"},
		{name: "BadField", input: "1,2\n3,x\n", err: strconv.ErrSyntax, msg: "line 2, field 2"},
		{name: "Overflow", input: "99999999999999999999\n", err: strconv.ErrRange, msg: "line 1, field 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridtext.ParseInts(strings.NewReader(tc.input), tc.opts...)
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestParse_Options(t *testing.T) {
	input := "# sensor grid\nx; y\n1; 2\n 3 ;4\n"
	g, err := gridtext.ParseInts(strings.NewReader(input),
		gridtext.WithComma(';'),
		gridtext.WithComment('#'),
		gridtext.WithTrimSpace(),
		gridtext.WithHeader(),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Columns())
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(g.All()))
	rows, _ := g.RowCount()
	assert.Equal(t, 2, rows)
}

func TestParse_WithoutTrimSpace(t *testing.T) {
	_, err := gridtext.ParseInts(strings.NewReader("1, 2\n"))
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseStrings_Quoted(t *testing.T) {
	g, err := gridtext.ParseStrings(strings.NewReader("\"a,b\",c\n\"d\"\"e\",f\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Columns())
	assert.Equal(t, []string{"a,b", "d\"e"}, slices.Collect(g.Col(0)))
}

func TestParseFloats(t *testing.T) {
	g, err := gridtext.ParseFloats(strings.NewReader("0.5,1e3\n-2,NaN\n"))
	require.NoError(t, err)

	v, ok := g.Get(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1000.0, v)
	v, _ = g.Get(1, 1)
	assert.True(t, v != v, "want NaN, got %v", v)
}

func TestOptions_Panics(t *testing.T) {
	for _, r := range []rune{'\n', '\r', '"', 0} {
		assert.Panics(t, func() { gridtext.WithComma(r) }, "WithComma(%q)", r)
		assert.Panics(t, func() { gridtext.WithComment(r) }, "WithComment(%q)", r)
	}
	assert.NotPanics(t, func() { gridtext.WithComma('\t') })
}
