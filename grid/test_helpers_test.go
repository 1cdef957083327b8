// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures for the grid tests.
//
// Purpose:
//   • Build the same logical grid from a sequence source and from a slice so
//     every view is checked on both the pull path and the indexed path.
//   • Assert precondition panics by sentinel rather than by message.

package grid_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itergrid/grid"
	"github.com/katalvlaran/itergrid/seq"
)

// ints returns [0, n).
func ints(n int) []int {
	return slices.Collect(seq.Range(0, n))
}

// source names a way of building a grid over [0, n).
type source struct {
	name  string
	build func(n, columns int, opts ...grid.Option) *grid.Grid[int]
}

// sources lists the sequence-backed and slice-backed constructions.
var sources = []source{
	{"Seq", func(n, columns int, opts ...grid.Option) *grid.Grid[int] {
		return grid.New(seq.Range(0, n), columns, opts...)
	}},
	{"Slice", func(n, columns int, opts ...grid.Option) *grid.Grid[int] {
		return grid.FromSlice(ints(n), columns, opts...)
	}},
}

// forEachSource runs fn as a subtest once per construction path.
func forEachSource(t *testing.T, fn func(t *testing.T, build func(n, columns int, opts ...grid.Option) *grid.Grid[int])) {
	t.Helper()
	for _, src := range sources {
		t.Run(src.name, func(t *testing.T) {
			fn(t, src.build)
		})
	}
}

// requireSeq collects s and diffs it against want; nil and empty are equal.
func requireSeq[T any](t *testing.T, want []T, s iter.Seq[T]) {
	t.Helper()
	got := slices.Collect(s)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

// requirePanicIs fails unless f panics with an error matching target.
func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %#v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}
