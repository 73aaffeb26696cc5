// Package trapnav builds trapezoidal decompositions of a set of polygonal
// obstacles and answers free-space path queries over them. It is a thin
// public façade over trapmap: every exported function here recovers the
// internal package's structural panics and turns them into an error, which
// is the only place in this module recover() is called.
package trapnav

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/briarhollow/trapnav/trapmap"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Polygon is a closed, simple polygon given by its vertices in order.
// Winding order does not matter; see trapmap.Polygon.ExtractEdges.
type Polygon struct {
	Points []Point
}

// Path is the result of a ComputePath call. Reason is empty and Points holds
// the ordered sequence from start to goal on success. A forbidden start/goal,
// a query point outside the map's universe, or an unreachable goal is
// reported as data, not a Go error: Points is nil and Reason names the cause
// (spec §7, §8 scenario 5), since these are expected outcomes of the input,
// not bugs in the map.
type Path struct {
	Points []Point
	Reason string
}

// Map is an opaque handle to a built trapezoidal decomposition.
type Map struct {
	inner *trapmap.Map
}

// FreeSpace is an opaque handle to a map's free-space classification.
type FreeSpace struct {
	inner *trapmap.FreeSpace
}

// RoadMap is an opaque handle to a roadmap built over a FreeSpace.
type RoadMap struct {
	inner *trapmap.RoadMap
}

func toInternalPoint(p Point) *trapmap.Point {
	return &trapmap.Point{X: p.X, Y: p.Y}
}

func fromInternalPoint(p *trapmap.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// withRecover runs fn and converts any structural panic raised by trapmap
// into an error, per the error-handling design: a broken invariant in the
// geometry core should never crash a caller, but it must never be silently
// swallowed either.
func withRecover(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if structural, ok := trapmap.AsStructuralError(r); ok {
				err = errors.Wrap(structural, "trapnav: internal invariant violation")
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// extractSegments flattens a set of obstacle polygons into tagged segments,
// one obstacle id per polygon (its index in obstacles).
func extractSegments(obstacles []Polygon) []*trapmap.Segment {
	var segs []*trapmap.Segment
	for id, poly := range obstacles {
		pts := make([]*trapmap.Point, len(poly.Points))
		for i, p := range poly.Points {
			pts[i] = toInternalPoint(p)
		}
		segs = append(segs, trapmap.Polygon{Points: pts}.ExtractEdges(id)...)
	}
	return segs
}

// BuildTrapezoidalMap builds the trapezoidal decomposition of the given
// obstacle polygons. seed selects the insertion permutation; pass the same
// seed twice to get the same decomposition back.
func BuildTrapezoidalMap(obstacles []Polygon, seed int64) (m *Map, err error) {
	segs := extractSegments(obstacles)
	err = withRecover(func() {
		inner := trapmap.BuildTrapezoidalMap(segs, rand.New(rand.NewSource(seed)))
		m = &Map{inner: inner}
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ComputeFreeSpace classifies m's trapezoids into free space and
// obstacle-interior, per Component F.
func ComputeFreeSpace(m *Map) (fs *FreeSpace, err error) {
	err = withRecover(func() {
		fs = &FreeSpace{inner: trapmap.ComputeFreeSpace(m.inner)}
	})
	return fs, err
}

// BuildRoadMap constructs a roadmap over fs's free trapezoids, per
// Component G.
func BuildRoadMap(fs *FreeSpace) (rm *RoadMap, err error) {
	err = withRecover(func() {
		rm = &RoadMap{inner: trapmap.BuildRoadMap(fs.inner)}
	})
	return rm, err
}

// ComputePath finds a shortest roadmap path from start to goal through fs's
// free space. A forbidden start/goal, an out-of-universe query point, or an
// unreachable goal comes back as a *Path with empty Points and a non-empty
// Reason -- the returned error is reserved for genuine internal invariant
// violations (see withRecover), never for these expected domain outcomes.
func ComputePath(fs *FreeSpace, rm *RoadMap, start, goal Point) (path *Path, err error) {
	err = withRecover(func() {
		points, reason := trapmap.ComputePath(fs.inner, rm.inner, toInternalPoint(start), toInternalPoint(goal))
		if reason != "" {
			path = &Path{Reason: reason}
			return
		}
		out := make([]Point, len(points))
		for i, p := range points {
			out[i] = fromInternalPoint(p)
		}
		path = &Path{Points: out}
	})
	if err != nil {
		return nil, err
	}
	return path, nil
}

// MinkowskiSum computes the Minkowski sum of two convex, counter-clockwise
// polygons.
func MinkowskiSum(p, q Polygon) (result Polygon, err error) {
	err = withRecover(func() {
		a := trapmap.Polygon{Points: make([]*trapmap.Point, len(p.Points))}
		for i, pt := range p.Points {
			a.Points[i] = toInternalPoint(pt)
		}
		b := trapmap.Polygon{Points: make([]*trapmap.Point, len(q.Points))}
		for i, pt := range q.Points {
			b.Points[i] = toInternalPoint(pt)
		}
		sum := trapmap.MinkowskiSum(a, b)
		pts := make([]Point, len(sum.Points))
		for i, pt := range sum.Points {
			pts[i] = fromInternalPoint(pt)
		}
		result = Polygon{Points: pts}
	})
	return result, err
}
