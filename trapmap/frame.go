package trapmap

import "math"

// frame records the synthetic bounding rectangle and its two horizontal
// segments, so later operations (e.g. validating that a start/goal point
// lies within the universe) can refer back to it.
type frame struct {
	top, bottom       *Segment
	minX, maxX        float64
	minY, maxY        float64
}

// buildFrame computes a bounding rectangle strictly larger than the given
// segments' extent (extent +/- 10% of max(dx, dy), per spec 4.E step 0),
// synthesizes its top and bottom walls tagged with FrameObstacleID, and
// returns the single initial trapezoid plus the frame record. If segs is
// empty, a unit-ish default extent is used so an empty map is still usable.
func buildFrame(segs []*Segment) (*Trapezoid, *frame) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	visit := func(p *Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, s := range segs {
		visit(s.Left)
		visit(s.Right)
	}
	if math.IsInf(minX, 1) {
		minX, maxX, minY, maxY = 0, 100, 0, 100
	}

	dx, dy := maxX-minX, maxY-minY
	pad := 0.1 * math.Max(dx, dy)
	if pad == 0 {
		pad = 10
	}
	minX -= pad
	maxX += pad
	minY -= pad
	maxY += pad

	midY := (minY + maxY) / 2
	leftP := &Point{X: minX, Y: midY}
	rightP := &Point{X: maxX, Y: midY}

	top := &Segment{Left: &Point{X: minX, Y: maxY}, Right: &Point{X: maxX, Y: maxY}, ObstacleID: FrameObstacleID}
	bottom := &Segment{Left: &Point{X: minX, Y: minY}, Right: &Point{X: maxX, Y: minY}, ObstacleID: FrameObstacleID}

	universe := &Trapezoid{Top: top, Bottom: bottom, LeftP: leftP, RightP: rightP}

	f := &frame{top: top, bottom: bottom, minX: minX, maxX: maxX, minY: minY, maxY: maxY}
	return universe, f
}

// Contains reports whether p lies within the bounding frame's extent.
func (f *frame) Contains(p *Point) bool {
	return p.X >= f.minX-Epsilon && p.X <= f.maxX+Epsilon &&
		p.Y >= f.minY-Epsilon && p.Y <= f.maxY+Epsilon
}

// NewMap creates an empty trapezoidal map from the given obstacle segments'
// extent (step 0 of the incremental updater): a single trapezoid bounded by a
// synthetic frame, with the DAG root a leaf pointing at it. Pass the full set
// of segments that will eventually be inserted so the frame is sized to
// contain all of them; the segments themselves are not inserted by NewMap.
func NewMap(extentSegments []*Segment) *Map {
	m := newMap()
	universe, f := buildFrame(extentSegments)
	m.frame = f
	m.register(universe)
	m.Root = newLeaf(universe)
	return m
}
