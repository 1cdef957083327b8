// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itergrid/matrix"
)

// mustFromData builds an r×c Dense from row-major data or fails the test.
func mustFromData(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(rows, cols, data)
	require.NoError(t, err)

	return m
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewFromData validates length and numeric-policy checks.
func TestNewFromData(t *testing.T) {
	_, err := matrix.NewFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromData(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromData(1, 2, []float64{1, math.Inf(1)}, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	// the input slice is copied
	data := []float64{1, 2, 3, 4}
	m = mustFromData(t, 2, 2, data)
	data[0] = 100
	v, _ = m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestSetGet validates Set() followed by At() and the shared grid storage.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	// The grid addresses the same cell as (col,row).
	gv, ok := m.Grid().Get(2, 1)
	require.True(t, ok)
	require.Equal(t, 7.89, gv)
}

// TestRowColDiag checks the slices derived from grid views.
func TestRowColDiag(t *testing.T) {
	m := mustFromData(t, 3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, row)

	col, err := m.Col(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 12}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, []float64{1, 6, 11}, m.Diag())
	assert.Equal(t, []float64{4, 7, 10}, m.AntiDiag())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFromData(t, 2, 2, []float64{1, 0, 0, 2})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustFromData(t, 2, 2, []float64{1, 2, 3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoApply covers the visitor and the in-place transformer.
func TestDoApply(t *testing.T) {
	m := mustFromData(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	var sum float64
	var visited int
	m.Do(func(i, j int, v float64) bool {
		sum += v
		visited++
		return !(i == 1 && j == 0) // stop after (1,0)
	})
	require.Equal(t, 4, visited)
	require.Equal(t, 10.0, sum)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i) }))
	require.Equal(t, "[10, 20, 30]\n[41, 51, 61]\n", m.String())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.Inf(-1)
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, "[0, 0, 0]\n[41, 51, 61]\n", m.String()) // row 0 already written
}

// TestView checks window bounds, reads and write-through.
func TestView(t *testing.T) {
	m := mustFromData(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	_, err := m.View(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	x, err := v.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 8.0, x)

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, v.Set(0, 1, -6))
	got, _ := m.At(1, 2)
	require.Equal(t, -6.0, got) // write landed in base

	require.ErrorIs(t, v.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	cp, err := v.Materialize()
	require.NoError(t, err)
	require.Equal(t, "[5, -6]\n[8, 9]\n", cp.String())

	empty, err := m.View(0, 3, 3, 0)
	require.NoError(t, err)
	_, err = empty.Materialize()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
