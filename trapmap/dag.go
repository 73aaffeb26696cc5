package trapmap

// The search DAG lets point location run in expected O(log n) instead of
// scanning every trapezoid. Nodes are polymorphic -- a leaf can be turned
// into an X-node or a Y-node in place during surgery (see update.go) -- so we
// use an interface to provide a closed union between the three kinds, the
// same way the teacher's query graph does it.
type NodeInner interface {
	// Locate descends from this node to the leaf whose trapezoid contains p.
	Locate(p *Point) *Node

	// ChildNodes is used by the graph iterator below to walk every node
	// reachable from a root exactly once.
	ChildNodes() []*Node

	// nodeInnerTypeHint is a dummy method that keeps *Node itself from
	// accidentally satisfying NodeInner, which would let a node get
	// double-wrapped.
	nodeInnerTypeHint()
}

func (LeafNode) nodeInnerTypeHint() {}
func (YNode) nodeInnerTypeHint()    {}
func (XNode) nodeInnerTypeHint()    {}

// Node is a single cell of the DAG. Its Inner is replaced in place during
// surgery, which is what lets every existing parent continue to point at a
// valid interior node (I1, I5).
type Node struct {
	Inner NodeInner
}

// Locate finds the leaf reachable from n that contains p.
func (n *Node) Locate(p *Point) *Node {
	if _, ok := n.Inner.(LeafNode); ok {
		return n
	}
	return n.Inner.Locate(p)
}

func (n *Node) ChildNodes() []*Node {
	return n.Inner.ChildNodes()
}

// LeafNode is a leaf of the DAG: a reference to the trapezoid it represents.
type LeafNode struct {
	Trapezoid *Trapezoid
}

func (node LeafNode) Locate(p *Point) *Node {
	fatalf("tried to descend past a leaf")
	return nil
}

func (node LeafNode) ChildNodes() []*Node {
	return nil
}

// XNode splits the plane by the x-coordinate of Point: Left is strictly left
// of Point.X, Right is everything else (I3's left<right discipline on the
// X-axis relies on the same Epsilon used everywhere else).
type XNode struct {
	Point       *Point
	Left, Right *Node
}

func (node XNode) Locate(p *Point) *Node {
	if p.X < node.Point.X-Epsilon {
		return node.Left.Locate(p)
	}
	return node.Right.Locate(p)
}

func (node XNode) ChildNodes() []*Node {
	return []*Node{node.Left, node.Right}
}

// YNode splits the plane by Segment: Above holds points strictly above the
// segment, Below holds everything else, including points exactly on it --
// see Segment.IsAbove's tie-break.
type YNode struct {
	Segment     *Segment
	Above, Below *Node
}

func (node YNode) Locate(p *Point) *Node {
	if node.Segment.IsAbove(p) {
		return node.Above.Locate(p)
	}
	return node.Below.Locate(p)
}

func (node YNode) ChildNodes() []*Node {
	return []*Node{node.Above, node.Below}
}

// GraphIterator walks every node reachable from a root exactly once.
// Traversal order is unspecified; behavior is undefined if the graph is
// mutated during iteration. Because the DAG is a DAG and not a tree (I5), a
// naive recursive walk would revisit shared leaves; this iterator tracks
// what it has already emitted.
type GraphIterator struct {
	stack []*Node
	seen  map[*Node]struct{}
}

func NewGraphIterator(root *Node) *GraphIterator {
	return &GraphIterator{stack: []*Node{root}, seen: map[*Node]struct{}{}}
}

func (iter *GraphIterator) Next() *Node {
	for len(iter.stack) > 0 {
		node := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		if _, ok := iter.seen[node]; ok {
			continue
		}
		iter.seen[node] = struct{}{}
		iter.stack = append(iter.stack, node.ChildNodes()...)
		return node
	}
	return nil
}

// IterateNodes returns a channel that yields every node reachable from root
// exactly once.
func IterateNodes(root *Node) chan *Node {
	ch := make(chan *Node)
	go func() {
		iter := NewGraphIterator(root)
		for {
			node := iter.Next()
			if node == nil {
				break
			}
			ch <- node
		}
		close(ch)
	}()
	return ch
}

// IterateLeaves returns a channel that yields every trapezoid reachable from
// root exactly once, by filtering IterateNodes down to LeafNode sinks.
func IterateLeaves(root *Node) chan *Trapezoid {
	ch := make(chan *Trapezoid)
	go func() {
		for node := range IterateNodes(root) {
			if leaf, ok := node.Inner.(LeafNode); ok {
				ch <- leaf.Trapezoid
			}
		}
		close(ch)
	}()
	return ch
}
