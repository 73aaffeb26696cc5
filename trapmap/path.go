package trapmap

// These are carried as data in ComputePath's return, not as Go errors: a
// start/goal sitting inside an obstacle, outside the map's universe, or with
// no connecting roadmap path is a property of the input, not a broken
// invariant (see the error-handling design) -- the caller gets back a nil
// point slice plus one of these reason strings, never a Go error.
const (
	ReasonStartForbidden       = "start in forbidden space"
	ReasonGoalForbidden        = "goal in forbidden space"
	ReasonStartOutsideUniverse = "start point lies outside the map's universe"
	ReasonGoalOutsideUniverse  = "goal point lies outside the map's universe"
	ReasonNoPath               = "no path exists between start and goal"
)

// ComputePath finds a shortest path (by roadmap hop count) from start to
// goal through fs's free space, per spec Component H: locate each endpoint's
// trapezoid, BFS the roadmap between their centers, then splice the actual
// start and goal points onto the ends of the center/wall-node chain. Adjacent
// duplicate points (start coinciding with its trapezoid's center, for
// instance) are collapsed.
//
// On any of the documented failure modes (forbidden start/goal, a query
// point outside the bounding universe, or no roadmap path between the two),
// ComputePath returns a nil point slice and a non-empty reason -- this is
// the expected, data-carrying outcome, not an error.
func ComputePath(fs *FreeSpace, rm *RoadMap, start, goal *Point) (points []*Point, reason string) {
	if !fs.m.frame.Contains(start) {
		return nil, ReasonStartOutsideUniverse
	}
	if !fs.m.frame.Contains(goal) {
		return nil, ReasonGoalOutsideUniverse
	}

	startTrap := fs.m.Locate(start)
	if startTrap == nil || !fs.Contains(startTrap) {
		return nil, ReasonStartForbidden
	}
	goalTrap := fs.m.Locate(goal)
	if goalTrap == nil || !fs.Contains(goalTrap) {
		return nil, ReasonGoalForbidden
	}

	startNode := rm.CenterOf(startTrap)
	goalNode := rm.CenterOf(goalTrap)

	nodes, reason := bfsPath(rm, startNode, goalNode)
	if reason != "" {
		return nil, reason
	}

	out := make([]*Point, 0, len(nodes)+2)
	out = append(out, start)
	for _, n := range nodes {
		out = append(out, n.Point)
	}
	out = append(out, goal)

	return dedupeAdjacent(out), ""
}

// bfsPath runs an unweighted breadth-first search over rm from start to
// goal, returning the node sequence including both endpoints. Every roadmap
// edge has unit cost, so BFS already finds a minimum-hop path (spec P6/P7).
// A non-empty reason means no path exists; the node slice is nil in that case.
func bfsPath(rm *RoadMap, start, goal *RoadNode) (nodes []*RoadNode, reason string) {
	if start == goal {
		return []*RoadNode{start}, ""
	}

	visited := map[*RoadNode]bool{start: true}
	prev := map[*RoadNode]*RoadNode{}
	queue := []*RoadNode{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range rm.Neighbors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			prev[next] = cur
			if next == goal {
				return reconstruct(prev, start, goal), ""
			}
			queue = append(queue, next)
		}
	}
	return nil, ReasonNoPath
}

func reconstruct(prev map[*RoadNode]*RoadNode, start, goal *RoadNode) []*RoadNode {
	var rev []*RoadNode
	for n := goal; n != start; n = prev[n] {
		rev = append(rev, n)
	}
	rev = append(rev, start)

	out := make([]*RoadNode, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}

// dedupeAdjacent removes consecutive points that are equal under Epsilon, so
// splicing the literal start/goal onto the roadmap chain never yields a
// zero-length leading or trailing segment.
func dedupeAdjacent(points []*Point) []*Point {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if !out[len(out)-1].Equal(p) {
			out = append(out, p)
		}
	}
	return out
}
