package trapmap

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used for every comparison in the package:
// point equality, x-coordinate ordering during descent and traversal, and the
// "is above" sign test. Mixing a tolerant comparison here with a strict one
// elsewhere is how neighbor links end up inconsistent at polygon vertices, so
// every comparison in this package goes through Equal or one of the methods
// below.
const Epsilon = 1e-9

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Equal reports whether p and q are the same point under Epsilon.
func (p *Point) Equal(q *Point) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Less gives the lexicographic order (x then y) under Epsilon, used to
// normalize segment endpoints and to break ties during X-node descent.
func (p *Point) Less(q *Point) bool {
	if !Equal(p.X, q.X) {
		return p.X < q.X
	}
	return p.Y < q.Y-Epsilon
}

// NewSegment normalizes a and b so that Left < Right, and tags the result
// with the given obstacle id. Callers must never pass two points that are
// equal under Epsilon.
func NewSegment(a, b *Point, obstacleID int) *Segment {
	if a.Less(b) {
		return &Segment{Left: a, Right: b, ObstacleID: obstacleID}
	}
	return &Segment{Left: b, Right: a, ObstacleID: obstacleID}
}

// IsVertical reports whether the segment's endpoints share an x-coordinate.
// Under general position this should never happen for an inserted segment,
// but the bounding frame's walls are conceptually vertical and never stored
// as top/bottom, so this predicate exists for completeness and assertions.
func (s *Segment) IsVertical() bool {
	return Equal(s.Left.X, s.Right.X)
}

// YAt linearly interpolates the segment's y value at x. Vertical segments
// return +Inf; callers must never evaluate a vertical segment as a trapezoid
// top or bottom.
func (s *Segment) YAt(x float64) float64 {
	if s.IsVertical() {
		return math.Inf(1)
	}
	t := (x - s.Left.X) / (s.Right.X - s.Left.X)
	return s.Left.Y + t*(s.Right.Y-s.Left.Y)
}

// IsAbove reports whether p lies strictly above the segment, using the sign
// of the cross product (right-left) x (p-left). A zero cross product (p is
// exactly on the line) is treated as "below" -- this tie-break is what keeps
// point location deterministic for points that lie on a segment, including
// its own endpoints.
func (s *Segment) IsAbove(p *Point) bool {
	cross := (s.Right.X-s.Left.X)*(p.Y-s.Left.Y) - (s.Right.Y-s.Left.Y)*(p.X-s.Left.X)
	return cross > Epsilon
}

// String renders a segment as its endpoints and obstacle id, for trace and
// warning output.
func (s *Segment) String() string {
	if s == nil {
		return "<nil segment>"
	}
	return fmt.Sprintf("(%.3g,%.3g)-(%.3g,%.3g)#%d", s.Left.X, s.Left.Y, s.Right.X, s.Right.Y, s.ObstacleID)
}

// ExtractEdges walks consecutive vertex pairs and emits one segment per edge,
// tagged with obstacleID. Polygons with fewer than three vertices are
// degenerate input: they are silently skipped, with a warning logged (see
// warnf in log.go), per the error-handling policy.
func (poly Polygon) ExtractEdges(obstacleID int) []*Segment {
	n := len(poly.Points)
	if n < 3 {
		warnf("polygon %d has %d vertices, skipping degenerate input", obstacleID, n)
		return nil
	}
	edges := make([]*Segment, 0, n)
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]
		edges = append(edges, NewSegment(a, b, obstacleID))
	}
	return edges
}
