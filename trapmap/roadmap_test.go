package trapmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookExampleObstacles is a small scene of three separated triangles inside
// a shared frame, used to exercise the full pipeline: decomposition, free
// space, roadmap, and shortest-path query.
func bookExampleObstacles() []*Segment {
	var segs []*Segment
	segs = append(segs, Polygon{Points: []*Point{{0, 0}, {10, 0}, {5, 8}}}.ExtractEdges(0)...)
	segs = append(segs, Polygon{Points: []*Point{{30, 20}, {40, 20}, {35, 28}}}.ExtractEdges(1)...)
	segs = append(segs, Polygon{Points: []*Point{{15, -20}, {25, -20}, {20, -12}}}.ExtractEdges(2)...)
	return segs
}

func TestBuildRoadMapAndComputePathAcrossThreeObstacles(t *testing.T) {
	segs := bookExampleObstacles()
	m := BuildTrapezoidalMap(segs, rand.New(rand.NewSource(42)))
	require.NoError(t, Validate(m))

	fs := ComputeFreeSpace(m)
	rm := BuildRoadMap(fs)
	require.NotEmpty(t, rm.Nodes)

	start := &Point{-2, -15}
	goal := &Point{42, 28}

	path, reason := ComputePath(fs, rm, start, goal)
	require.Empty(t, reason)
	require.NotEmpty(t, path)

	assert.True(t, path[0].Equal(start))
	assert.True(t, path[len(path)-1].Equal(goal))

	for i := 1; i < len(path); i++ {
		assert.False(t, path[i-1].Equal(path[i]), "consecutive duplicate points must be collapsed")
	}
}

func TestComputePathStartInForbiddenSpaceReturnsReason(t *testing.T) {
	segs := bookExampleObstacles()
	m := BuildTrapezoidalMap(segs, rand.New(rand.NewSource(42)))
	fs := ComputeFreeSpace(m)
	rm := BuildRoadMap(fs)

	insideFirstTriangle := &Point{5, 2}
	goal := &Point{42, 28}

	points, reason := ComputePath(fs, rm, insideFirstTriangle, goal)
	assert.Nil(t, points)
	assert.Equal(t, ReasonStartForbidden, reason)
}

func TestComputePathGoalInForbiddenSpaceReturnsReason(t *testing.T) {
	segs := bookExampleObstacles()
	m := BuildTrapezoidalMap(segs, rand.New(rand.NewSource(42)))
	fs := ComputeFreeSpace(m)
	rm := BuildRoadMap(fs)

	start := &Point{-2, -15}
	insideSecondTriangle := &Point{35, 23}

	points, reason := ComputePath(fs, rm, start, insideSecondTriangle)
	assert.Nil(t, points)
	assert.Equal(t, ReasonGoalForbidden, reason)
}

func TestComputePathOutsideUniverseReturnsReason(t *testing.T) {
	segs := bookExampleObstacles()
	m := BuildTrapezoidalMap(segs, rand.New(rand.NewSource(42)))
	fs := ComputeFreeSpace(m)
	rm := BuildRoadMap(fs)

	farOutside := &Point{1e6, 1e6}
	goal := &Point{42, 28}

	points, reason := ComputePath(fs, rm, farOutside, goal)
	assert.Nil(t, points)
	assert.Equal(t, ReasonStartOutsideUniverse, reason)
}
