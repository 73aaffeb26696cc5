package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two unit squares summed together produce a square scaled by two: each
// edge of one square is parallel to an edge of the other, so the merge folds
// all four pairs. A standard sanity check for the edge-merge algorithm.
func TestMinkowskiSumOfTwoSquaresIsScaledSquare(t *testing.T) {
	unitSquare := Polygon{Points: []*Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}

	sum := MinkowskiSum(unitSquare, unitSquare)
	require.Len(t, sum.Points, 4, "summing two squares yields a square, not an octagon, since parallel edges merge")

	xs := map[float64]bool{}
	ys := map[float64]bool{}
	for _, p := range sum.Points {
		xs[p.X] = true
		ys[p.Y] = true
	}
	assert.Len(t, xs, 2)
	assert.Len(t, ys, 2)
}

func TestMinkowskiSumOfTwoTrianglesIsHexagon(t *testing.T) {
	// Two triangles with no two edges pointing the same direction: their sum
	// has all 3+3 edges distinct, so no pair folds together.
	a := Polygon{Points: []*Point{{0, 0}, {4, 1}, {1, 3}}}
	b := Polygon{Points: []*Point{{0, 0}, {1, 4}, {-3, 2}}}

	sum := MinkowskiSum(a, b)
	require.Len(t, sum.Points, 6, "two triangles with no shared edge direction yield a hexagon (3+3 edges)")
}

func TestMinkowskiSumEmptyInput(t *testing.T) {
	square := Polygon{Points: []*Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}
	empty := Polygon{}

	sum := MinkowskiSum(square, empty)
	assert.Empty(t, sum.Points)
}
