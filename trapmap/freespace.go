package trapmap

// FreeSpace is the result of ComputeFreeSpace: the subset of a map's
// trapezoids that lie outside every obstacle, recorded as a set so downstream
// components (roadmap, point classification) can test membership in O(1).
type FreeSpace struct {
	m    *Map
	free map[*Trapezoid]struct{}
}

// ComputeFreeSpace classifies every trapezoid in m: a trapezoid is interior
// to an obstacle (and excluded from FreeSpace) exactly when its Top and
// Bottom are both non-nil and belong to the same obstacle id (per spec
// Component F -- the two walls of a convex polygon sandwiching the
// trapezoid are necessarily two edges of the same polygon). The bounding
// frame's own walls carry FrameObstacleID, which never matches a real
// polygon's non-negative id, so a trapezoid bounded above or below only by
// the frame is always free.
func ComputeFreeSpace(m *Map) *FreeSpace {
	free := make(map[*Trapezoid]struct{})
	for _, t := range m.Trapezoids() {
		if isInterior(t) {
			continue
		}
		free[t] = struct{}{}
	}
	tracef("free space: %d of %d trapezoids are free", len(free), len(m.trapezoids))
	return &FreeSpace{m: m, free: free}
}

func isInterior(t *Trapezoid) bool {
	if t.Top == nil || t.Bottom == nil {
		return false
	}
	return t.Top.ObstacleID == t.Bottom.ObstacleID && t.Top.ObstacleID >= 0
}

// Contains reports whether t is free space.
func (fs *FreeSpace) Contains(t *Trapezoid) bool {
	_, ok := fs.free[t]
	return ok
}

// Trapezoids returns every free trapezoid. Order is unspecified.
func (fs *FreeSpace) Trapezoids() []*Trapezoid {
	out := make([]*Trapezoid, 0, len(fs.free))
	for t := range fs.free {
		out = append(out, t)
	}
	return out
}

// ContainsPoint locates p and reports whether the trapezoid it falls in is
// free space. A point exactly on an obstacle edge is classified by
// Segment.IsAbove's tie-break, same as Locate.
func (fs *FreeSpace) ContainsPoint(p *Point) bool {
	t := fs.m.Locate(p)
	if t == nil {
		return false
	}
	return fs.Contains(t)
}
