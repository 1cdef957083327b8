// SPDX-License-Identifier: MIT
package grid_test

import (
	"testing"

	"github.com/katalvlaran/itergrid/grid"
)

// TestDiagFwd walks top-left to bottom-right diagonals on a 5×5 grid of 0..25.
func TestDiagFwd(t *testing.T) {
	cases := []struct {
		name     string
		col, row int
		want     []int
	}{
		{"BelowMain", 1, 2, []int{5, 11, 17, 23}},
		{"Main", 0, 0, []int{0, 6, 12, 18, 24}},
		{"MainMiddle", 3, 3, []int{0, 6, 12, 18, 24}},
		{"AboveMain", 3, 1, []int{2, 8, 14}},
		{"TopRightCorner", 4, 0, []int{4}},
		{"BottomLeftCorner", 0, 4, []int{20}},
		{"PastData", 0, 10, nil},
	}
	forEachSource(t, func(t *testing.T, build func(int, int, ...grid.Option) *grid.Grid[int]) {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				requireSeq(t, tc.want, build(25, 5).DiagFwd(tc.col, tc.row))
			})
		}
	})
}

// TestDiagBwd walks top-right to bottom-left diagonals, including the anchors
// where a naive "(row-(columns-col))*columns-1" projection would underflow.
func TestDiagBwd(t *testing.T) {
	cases := []struct {
		name     string
		col, row int
		want     []int
	}{
		{"BelowAnti", 3, 2, []int{9, 13, 17, 21}},
		{"Anti", 4, 0, []int{4, 8, 12, 16, 20}},
		{"AntiMiddle", 2, 2, []int{4, 8, 12, 16, 20}},
		{"Origin", 0, 0, []int{0}},
		{"FirstRowSmall", 1, 0, []int{1, 5}},
		{"LastRowRight", 4, 4, []int{24}},
		{"PastData", 4, 10, nil},
	}
	forEachSource(t, func(t *testing.T, build func(int, int, ...grid.Option) *grid.Grid[int]) {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				requireSeq(t, tc.want, build(25, 5).DiagBwd(tc.col, tc.row))
			})
		}
	})
}

// TestDiag_RaggedAndNarrow covers partial last rows and single-column grids.
func TestDiag_RaggedAndNarrow(t *testing.T) {
	forEachSource(t, func(t *testing.T, build func(int, int, ...grid.Option) *grid.Grid[int]) {
		ragged := build(12, 5)
		requireSeq(t, []int{0, 6}, ragged.DiagFwd(0, 0))
		requireSeq(t, []int{4, 8}, ragged.DiagBwd(4, 0))

		narrow := build(4, 1)
		requireSeq(t, []int{2}, narrow.DiagFwd(0, 2))
		requireSeq(t, []int{2}, narrow.DiagBwd(0, 2))
	})
}

// TestDiag_Preconditions verifies the column assertion and negative rows.
func TestDiag_Preconditions(t *testing.T) {
	g := grid.FromSlice(ints(25), 5)
	requirePanicIs(t, grid.ErrColumnOutOfRange, func() { g.DiagFwd(5, 0) })
	requirePanicIs(t, grid.ErrColumnOutOfRange, func() { g.DiagBwd(7, 1) })
	requirePanicIs(t, grid.ErrNegativeIndex, func() { g.DiagFwd(-1, 0) })
	requirePanicIs(t, grid.ErrNegativeIndex, func() { g.DiagBwd(0, -1) })
	requirePanicIs(t, grid.ErrColumnOutOfRange, func() { grid.FromSlice(ints(25), 0).DiagBwd(0, 0) })
}
