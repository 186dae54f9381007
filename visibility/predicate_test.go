// Internal tests for the line-of-sight predicates: obstruction geometry,
// the on-the-line rule, and symmetry of the visibility relation.
package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNaturalVisible_EmptyInterior verifies the vacuous case n2 == n1+1.
func TestNaturalVisible_EmptyInterior(t *testing.T) {
	s := []float64{5, -3}
	assert.True(t, naturalVisible(s, 0, 1), "consecutive samples are always visible")
	assert.True(t, horizontalVisible(s, 0, 1))
}

// TestNaturalVisible_OnTheLineBlocks verifies that an interior sample lying
// exactly on the connecting line obstructs (>=, not >).
func TestNaturalVisible_OnTheLineBlocks(t *testing.T) {
	// 0,1,2: sample 1 sits exactly on the 0–2 chord.
	s := []float64{0, 1, 2}
	assert.False(t, naturalVisible(s, 0, 2), "a collinear interior sample must block")

	// Lower the interior sample barely below the chord: visible again.
	s[1] = 1 - 1e-9
	assert.True(t, naturalVisible(s, 0, 2))
}

// TestNaturalVisible_ValleyClears verifies a strictly convex valley leaves
// every pair mutually visible.
func TestNaturalVisible_ValleyClears(t *testing.T) {
	s := []float64{4, 1, 0, 1, 4}
	for n1 := 0; n1 < len(s); n1++ {
		for n2 := n1 + 1; n2 < len(s); n2++ {
			assert.Truef(t, naturalVisible(s, n1, n2), "pair (%d,%d) should clear the valley", n1, n2)
		}
	}
}

// TestNaturalVisible_PeakBlocks verifies an interior sample above the chord
// obstructs even when both endpoints are taller than their neighbors.
func TestNaturalVisible_PeakBlocks(t *testing.T) {
	s := []float64{2, 9, 2}
	assert.False(t, naturalVisible(s, 0, 2))
}

// TestHorizontalVisible_CeilingRule verifies the flat-line test: interior
// samples reaching the taller endpoint block, anything lower clears.
func TestHorizontalVisible_CeilingRule(t *testing.T) {
	// Interior 2.999… < max(2,3)=3 → visible.
	assert.True(t, horizontalVisible([]float64{2, 2.999, 3}, 0, 2))
	// Interior equal to the ceiling blocks.
	assert.False(t, horizontalVisible([]float64{2, 3, 3}, 0, 2))
	// Interior above either endpoint blocks.
	assert.False(t, horizontalVisible([]float64{2, 5, 3}, 0, 2))
}

// TestHorizontal_IgnoresSlope contrasts the two variants on a sagging
// chord: the natural line is obstructed while the flat line clears.
func TestHorizontal_IgnoresSlope(t *testing.T) {
	// Chord 0→10 passes through 5 at the midpoint; interior sample 9
	// blocks the natural line but stays under the flat ceiling of 10.
	s := []float64{0, 9, 10}
	assert.False(t, naturalVisible(s, 0, 2))
	assert.True(t, horizontalVisible(s, 0, 2))
}

// TestPredicate_Symmetry verifies the visibility relation is symmetric:
// evaluating with swapped endpoint roles yields the same answer. The
// predicates take ordered indices, so symmetry is checked by comparing the
// relation against a reversed copy of the series.
func TestPredicate_Symmetry(t *testing.T) {
	s := []float64{2, 1, 3, 2, 1, 3, 2, 1, 3}
	rev := make([]float64, len(s))
	for i, v := range s {
		rev[len(s)-1-i] = v
	}

	for n1 := 0; n1 < len(s); n1++ {
		for n2 := n1 + 1; n2 < len(s); n2++ {
			r1, r2 := len(s)-1-n2, len(s)-1-n1
			assert.Equalf(t, naturalVisible(s, n1, n2), naturalVisible(rev, r1, r2),
				"natural relation must be symmetric for (%d,%d)", n1, n2)
			assert.Equalf(t, horizontalVisible(s, n1, n2), horizontalVisible(rev, r1, r2),
				"horizontal relation must be symmetric for (%d,%d)", n1, n2)
		}
	}
}

// TestVisible_Dispatch verifies variant routing and the unknown-tag guard.
func TestVisible_Dispatch(t *testing.T) {
	s := []float64{0, 9, 10}
	assert.False(t, visible(s, Natural, 0, 2))
	assert.True(t, visible(s, Horizontal, 0, 2))
	assert.False(t, visible(s, Variant(99), 0, 2), "unknown variants never accept a pair")
}

// TestVariant_String covers the diagnostic names.
func TestVariant_String(t *testing.T) {
	assert.Equal(t, "Natural", Natural.String())
	assert.Equal(t, "Horizontal", Horizontal.String())
	assert.Equal(t, "Variant(?)", Variant(99).String())
}
