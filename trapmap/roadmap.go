package trapmap

// RoadNode is a vertex of the roadmap graph: either the center of a free
// trapezoid, or a point on a vertical wall shared by two adjacent free
// trapezoids. Trapezoid is nil for wall nodes.
type RoadNode struct {
	Point     *Point
	Trapezoid *Trapezoid
}

// RoadMap is an undirected graph over a free-space decomposition: one node
// per free trapezoid (its center) plus one node per shared wall between two
// free trapezoids, with edges connecting each trapezoid's center to the wall
// nodes on its boundary. Component H's BFS runs over this graph.
type RoadMap struct {
	Nodes []*RoadNode
	edges map[*RoadNode][]*RoadNode

	centerOf map[*Trapezoid]*RoadNode
}

func (rm *RoadMap) addNode(n *RoadNode) {
	rm.Nodes = append(rm.Nodes, n)
	rm.edges[n] = nil
}

func (rm *RoadMap) addEdge(a, b *RoadNode) {
	rm.edges[a] = append(rm.edges[a], b)
	rm.edges[b] = append(rm.edges[b], a)
}

// Neighbors returns n's adjacent roadmap nodes.
func (rm *RoadMap) Neighbors(n *RoadNode) []*RoadNode {
	return rm.edges[n]
}

// CenterOf returns the roadmap node at t's center, or nil if t is not free.
func (rm *RoadMap) CenterOf(t *Trapezoid) *RoadNode {
	return rm.centerOf[t]
}

// wallNodeKey identifies a candidate wall node by its wall's x coordinate and
// y-interval, so the two trapezoids sharing a wall contribute exactly one
// node for it instead of two.
type wallSpan struct {
	x, yLo, yHi float64
}

func (a wallSpan) equal(b wallSpan) bool {
	return Equal(a.x, b.x) && Equal(a.yLo, b.yLo) && Equal(a.yHi, b.yHi)
}

// BuildRoadMap constructs the roadmap over fs's free trapezoids, per spec
// Component G: a center node for every free trapezoid, a shared node for
// every wall between two free trapezoids (split at the polygon vertex when a
// trapezoid's two neighbors on one side differ), and edges from each
// center to the wall nodes bounding it. Trapezoids with no free neighbor on
// a given side (the boundary of the free space, or an obstacle) contribute
// no wall node on that side.
func BuildRoadMap(fs *FreeSpace) *RoadMap {
	rm := &RoadMap{edges: make(map[*RoadNode][]*RoadNode), centerOf: make(map[*Trapezoid]*RoadNode)}

	var wallKeys []wallSpan
	var wallNodes []*RoadNode
	findOrCreateWall := func(span wallSpan, y float64) *RoadNode {
		for i, k := range wallKeys {
			if k.equal(span) {
				return wallNodes[i]
			}
		}
		n := &RoadNode{Point: &Point{X: span.x, Y: y}}
		rm.addNode(n)
		wallKeys = append(wallKeys, span)
		wallNodes = append(wallNodes, n)
		return n
	}

	free := fs.Trapezoids()
	for _, t := range free {
		center := &RoadNode{Point: &Point{X: t.midX(), Y: (t.topY(t.midX()) + t.bottomY(t.midX())) / 2}, Trapezoid: t}
		rm.addNode(center)
		rm.centerOf[t] = center
	}

	for _, t := range free {
		center := rm.centerOf[t]
		for _, span := range leftWalls(t) {
			if !fs.Contains(span.neighbor) {
				continue
			}
			node := findOrCreateWall(span.wallSpan, (span.yLo+span.yHi)/2)
			rm.addEdge(center, node)
		}
		for _, span := range rightWalls(t) {
			if !fs.Contains(span.neighbor) {
				continue
			}
			node := findOrCreateWall(span.wallSpan, (span.yLo+span.yHi)/2)
			rm.addEdge(center, node)
		}
	}

	return rm
}

type neighborWall struct {
	wallSpan
	neighbor *Trapezoid
}

// leftWalls returns the one or two wall segments on t's left side, split at
// t.LeftP.Y when t.UpperLeft and t.LowerLeft differ.
func leftWalls(t *Trapezoid) []neighborWall {
	x := t.LeftP.X
	if t.UpperLeft == t.LowerLeft {
		if t.UpperLeft == nil {
			return nil
		}
		return []neighborWall{{wallSpan{x, t.bottomY(x), t.topY(x)}, t.UpperLeft}}
	}
	var out []neighborWall
	if t.UpperLeft != nil {
		out = append(out, neighborWall{wallSpan{x, t.LeftP.Y, t.topY(x)}, t.UpperLeft})
	}
	if t.LowerLeft != nil {
		out = append(out, neighborWall{wallSpan{x, t.bottomY(x), t.LeftP.Y}, t.LowerLeft})
	}
	return out
}

// rightWalls mirrors leftWalls for t's right side.
func rightWalls(t *Trapezoid) []neighborWall {
	x := t.RightP.X
	if t.UpperRight == t.LowerRight {
		if t.UpperRight == nil {
			return nil
		}
		return []neighborWall{{wallSpan{x, t.bottomY(x), t.topY(x)}, t.UpperRight}}
	}
	var out []neighborWall
	if t.UpperRight != nil {
		out = append(out, neighborWall{wallSpan{x, t.RightP.Y, t.topY(x)}, t.UpperRight})
	}
	if t.LowerRight != nil {
		out = append(out, neighborWall{wallSpan{x, t.bottomY(x), t.RightP.Y}, t.LowerRight})
	}
	return out
}
