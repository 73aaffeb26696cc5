// Package trapmap implements the incremental trapezoidal-map decomposition
// and the search DAG that makes point location against it logarithmic in
// expected depth. On top of the map it derives free space (the trapezoids
// not belonging to any single obstacle), a roadmap graph over that free
// space, and a BFS-based shortest path query between two points.
package trapmap

// Point is a planar point with real coordinates. All points that take part
// in a Map are pointers: some of them (polygon vertices) must compare equal
// by identity as well as by value, since the same vertex is shared by two
// consecutive edges.
type Point struct {
	X float64
	Y float64
}

// FrameObstacleID is the obstacle_id carried by the synthetic bounding-frame
// segments created in step 0 of the incremental updater.
const FrameObstacleID = -1

// Segment is an oriented pair of endpoints, normalized at construction time
// so that Left precedes Right (see Point.Less). ObstacleID is FrameObstacleID
// for the synthetic bounding frame, or the index (>= 0) of the polygon the
// edge came from.
type Segment struct {
	Left, Right *Point
	ObstacleID  int
}

// Polygon is an ordered vertex ring. The core does not care about winding
// order; ExtractEdges just walks consecutive pairs.
type Polygon struct {
	Points []*Point
}
