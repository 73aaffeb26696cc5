package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1.0, 1.0+1e-12))
	assert.False(t, Equal(1.0, 1.1))
}

func TestPointLess(t *testing.T) {
	cases := []struct {
		name string
		a, b *Point
		want bool
	}{
		{"strictly left", &Point{0, 0}, &Point{1, 0}, true},
		{"strictly right", &Point{1, 0}, &Point{0, 0}, false},
		{"same x, lower y", &Point{0, 0}, &Point{0, 1}, true},
		{"equal points", &Point{0, 0}, &Point{0, 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Less(c.b))
		})
	}
}

func TestNewSegmentNormalizesEndpoints(t *testing.T) {
	a := &Point{5, 0}
	b := &Point{0, 0}
	s := NewSegment(a, b, 1)
	assert.Same(t, b, s.Left)
	assert.Same(t, a, s.Right)
}

func TestSegmentYAt(t *testing.T) {
	s := NewSegment(&Point{0, 0}, &Point{10, 10}, 0)
	assert.InDelta(t, 5.0, s.YAt(5), 1e-9)
}

func TestSegmentIsAbove(t *testing.T) {
	s := NewSegment(&Point{0, 0}, &Point{10, 0}, 0)
	assert.True(t, s.IsAbove(&Point{5, 1}))
	assert.False(t, s.IsAbove(&Point{5, -1}))
	assert.False(t, s.IsAbove(&Point{5, 0}), "a point on the segment is classified below, not above")
}

func TestExtractEdgesDegeneratePolygonSkipped(t *testing.T) {
	poly := Polygon{Points: []*Point{{0, 0}, {1, 1}}}
	edges := poly.ExtractEdges(0)
	assert.Nil(t, edges)
}

func TestExtractEdgesTriangle(t *testing.T) {
	poly := Polygon{Points: []*Point{{0, 0}, {1, 0}, {0, 1}}}
	edges := poly.ExtractEdges(3)
	assert.Len(t, edges, 3)
	for _, e := range edges {
		assert.Equal(t, 3, e.ObstacleID)
	}
}
