package trapmap

// MinkowskiSum computes the Minkowski sum of two convex polygons given in
// counter-clockwise vertex order, by merging their edge vectors in order of
// polar angle (the standard two-pointer algorithm for convex polygons,
// O(|P|+|Q|) rather than the general O(|P||Q|) construction). Both P and Q
// must already be convex and counter-clockwise; this is an auxiliary
// operation outside the trapezoidal map's core scope, used by callers that
// want to grow an obstacle by a robot's footprint before building the map.
func MinkowskiSum(P, Q Polygon) Polygon {
	if len(P.Points) == 0 || len(Q.Points) == 0 {
		return Polygon{}
	}

	p := rotateToLowestVertex(P.Points)
	q := rotateToLowestVertex(Q.Points)

	pEdges := edgeVectors(p)
	qEdges := edgeVectors(q)

	start := &Point{X: p[0].X + q[0].X, Y: p[0].Y + q[0].Y}
	result := []*Point{start}

	i, j := 0, 0
	cur := start
	for i < len(pEdges) || j < len(qEdges) {
		var dx, dy float64
		switch {
		case i >= len(pEdges):
			dx, dy = qEdges[j].X, qEdges[j].Y
			j++
		case j >= len(qEdges):
			dx, dy = pEdges[i].X, pEdges[i].Y
			i++
		case Equal(cross(pEdges[i], qEdges[j]), 0):
			// Same direction: fold both edges into a single output edge
			// instead of emitting a spurious collinear vertex between them.
			dx, dy = pEdges[i].X+qEdges[j].X, pEdges[i].Y+qEdges[j].Y
			i++
			j++
		case cross(pEdges[i], qEdges[j]) > 0:
			dx, dy = pEdges[i].X, pEdges[i].Y
			i++
		default:
			dx, dy = qEdges[j].X, qEdges[j].Y
			j++
		}
		cur = &Point{X: cur.X + dx, Y: cur.Y + dy}
		result = append(result, cur)
	}

	// The walk returns to start; drop the closing duplicate.
	if len(result) > 1 && result[len(result)-1].Equal(start) {
		result = result[:len(result)-1]
	}

	return Polygon{Points: result}
}

// rotateToLowestVertex returns pts rotated so index 0 is the lowest-y vertex
// (ties broken by lowest x), the canonical starting point for the edge-merge
// algorithm.
func rotateToLowestVertex(pts []*Point) []*Point {
	start := 0
	for i, p := range pts[1:] {
		i++
		if p.Y < pts[start].Y-Epsilon || (Equal(p.Y, pts[start].Y) && p.X < pts[start].X-Epsilon) {
			start = i
		}
	}
	out := make([]*Point, len(pts))
	for i := range pts {
		out[i] = pts[(start+i)%len(pts)]
	}
	return out
}

// edgeVectors returns the vector from each vertex to its successor.
func edgeVectors(pts []*Point) []*Point {
	out := make([]*Point, len(pts))
	for i, p := range pts {
		next := pts[(i+1)%len(pts)]
		out[i] = &Point{X: next.X - p.X, Y: next.Y - p.Y}
	}
	return out
}

// cross is the z-component of the cross product of two edge vectors, used to
// order them by polar angle during the merge.
func cross(a, b *Point) float64 {
	return a.X*b.Y - a.Y*b.X
}
