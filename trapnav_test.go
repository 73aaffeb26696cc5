package trapnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrapezoidalMapEmptyObstacleSet(t *testing.T) {
	m, err := BuildTrapezoidalMap(nil, 1)
	require.NoError(t, err)
	require.NotNil(t, m)

	fs, err := ComputeFreeSpace(m)
	require.NoError(t, err)

	rm, err := BuildRoadMap(fs)
	require.NoError(t, err)

	path, err := ComputePath(fs, rm, Point{10, 10}, Point{60, 60})
	require.NoError(t, err)
	require.Empty(t, path.Reason)
	require.Len(t, path.Points, 3, "with no obstacles the whole frame is one free trapezoid, so the roadmap contributes only its center node between start and goal")
	assert.Equal(t, Point{10, 10}, path.Points[0])
	assert.Equal(t, Point{60, 60}, path.Points[2])
}

func TestFullPipelineThreeObstaclesPath(t *testing.T) {
	obstacles := []Polygon{
		{Points: []Point{{0, 0}, {10, 0}, {5, 8}}},
		{Points: []Point{{30, 20}, {40, 20}, {35, 28}}},
		{Points: []Point{{15, -20}, {25, -20}, {20, -12}}},
	}

	m, err := BuildTrapezoidalMap(obstacles, 42)
	require.NoError(t, err)

	fs, err := ComputeFreeSpace(m)
	require.NoError(t, err)

	rm, err := BuildRoadMap(fs)
	require.NoError(t, err)

	start := Point{-2, -15}
	goal := Point{42, 28}

	path, err := ComputePath(fs, rm, start, goal)
	require.NoError(t, err)
	require.Empty(t, path.Reason)
	require.NotEmpty(t, path.Points)
	assert.Equal(t, start, path.Points[0])
	assert.Equal(t, goal, path.Points[len(path.Points)-1])
}

func TestComputePathStartInForbiddenSpaceReturnsReason(t *testing.T) {
	obstacles := []Polygon{
		{Points: []Point{{0, 0}, {10, 0}, {5, 8}}},
	}
	m, err := BuildTrapezoidalMap(obstacles, 7)
	require.NoError(t, err)
	fs, err := ComputeFreeSpace(m)
	require.NoError(t, err)
	rm, err := BuildRoadMap(fs)
	require.NoError(t, err)

	path, err := ComputePath(fs, rm, Point{5, 2}, Point{50, 50})
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Empty(t, path.Points)
	assert.NotEmpty(t, path.Reason)
}

func TestMinkowskiSumHexagon(t *testing.T) {
	a := Polygon{Points: []Point{{0, 0}, {4, 1}, {1, 3}}}
	b := Polygon{Points: []Point{{0, 0}, {1, 4}, {-3, 2}}}

	sum, err := MinkowskiSum(a, b)
	require.NoError(t, err)
	assert.Len(t, sum.Points, 6)
}
