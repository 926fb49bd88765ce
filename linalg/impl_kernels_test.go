package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/linalg"
)

// TestDot_Basic verifies the inner product on a known pair.
func TestDot_Basic(t *testing.T) {
	s, err := linalg.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, s, epsTiny, "1*4 + 2*5 + 3*6 = 32")
}

// TestDot_Errors covers empty and mismatched operands.
func TestDot_Errors(t *testing.T) {
	_, err := linalg.Dot(nil, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrInvalidDimensions, "empty operand must error")

	_, err = linalg.Dot([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "length mismatch must error")
}

// TestMatVec_Basic verifies a rectangular product.
func TestMatVec_Basic(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	out, err := linalg.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, -2.0, out[0], epsTiny, "1 - 3 = -2")
	assert.InDelta(t, -2.0, out[1], epsTiny, "4 - 6 = -2")
}

// TestMatVec_Errors covers nil receiver and conformability.
func TestMatVec_Errors(t *testing.T) {
	_, err := linalg.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrNilMatrix, "nil matrix must error")

	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err = linalg.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "wrong vector length must error")
}

// TestQuadForm_Identity verifies vᵀ·I·v == ‖v‖².
func TestQuadForm_Identity(t *testing.T) {
	eye, err := linalg.Identity(3)
	require.NoError(t, err)

	q, err := linalg.QuadForm(eye, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 14.0, q, epsTiny, "1 + 4 + 9 = 14")
}

// TestQuadForm_Known verifies a dense 2x2 quadratic form.
func TestQuadForm_Known(t *testing.T) {
	m := mustDense(t, [][]float64{{2, 1}, {1, 3}})

	// vᵀ·M·v for v=(1,2): 2 + 2*1*2 + 3*4 = 18.
	q, err := linalg.QuadForm(m, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 18.0, q, epsTiny)
}

// TestQuadForm_Errors covers shape and conformability failures.
func TestQuadForm_Errors(t *testing.T) {
	_, err := linalg.QuadForm(nil, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = linalg.QuadForm(rect, []float64{1, 2, 3})
	assert.ErrorIs(t, err, linalg.ErrNonSquare, "rectangular input must error")

	sq := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	_, err = linalg.QuadForm(sq, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "wrong vector length must error")
}
