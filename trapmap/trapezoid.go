package trapmap

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"

	"github.com/briarhollow/trapnav/dbg"
)

// Trapezoid is the unit of the decomposition: the region bounded above by Top,
// below by Bottom, and on the sides by the vertical walls through LeftP and
// RightP. At the outer extent, Top and Bottom are the bounding frame's
// synthetic segments, so a map built by NewMap never has a nil Top or
// Bottom; LeftP/RightP are never nil (they are always endpoints of Top,
// Bottom, or the frame).
//
// The four neighbor fields are intentionally duplicated when a wall has only
// one logical neighbor on one side (no polygon vertex splits it there): both
// the upper and lower pointer on that side reference the same neighbor. This
// keeps every piece of code that walks "the two neighbors on a side" correct
// without a separate degenerate case.
type Trapezoid struct {
	Top, Bottom   *Segment
	LeftP, RightP *Point

	UpperLeft, LowerLeft   *Trapezoid
	UpperRight, LowerRight *Trapezoid

	// Node is the back-reference to this trapezoid's leaf in the search DAG.
	// Node.Inner.(LeafNode).Trapezoid must always equal this trapezoid; the two
	// references are set together by linkLeaf.
	Node *Node
}

// linkLeaf creates (or reuses) node as t's leaf, keeping the Node<->Trapezoid
// back-references mutually consistent (I1). Passing an existing node lets
// update.go repurpose a node in place during single-trapezoid surgery.
func linkLeaf(t *Trapezoid, node *Node) *Node {
	if node == nil {
		node = &Node{}
	}
	node.Inner = LeafNode{Trapezoid: t}
	t.Node = node
	return node
}

// newLeaf allocates a brand new node for t.
func newLeaf(t *Trapezoid) *Node {
	return linkLeaf(t, nil)
}

// midX is the x-coordinate halfway across the trapezoid, used to evaluate Top
// and Bottom without ever touching a vertical wall.
func (t *Trapezoid) midX() float64 {
	return (t.LeftP.X + t.RightP.X) / 2
}

// topY and bottomY evaluate the bounding segments at x, for use by the
// roadmap builder's center-node placement.
func (t *Trapezoid) topY(x float64) float64 {
	if t.Top == nil {
		return math.Inf(1)
	}
	return t.Top.YAt(x)
}

func (t *Trapezoid) bottomY(x float64) float64 {
	if t.Bottom == nil {
		return math.Inf(-1)
	}
	return t.Bottom.YAt(x)
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("Trapezoid %s <L:%s R:%s T:%s B:%s>",
		t.dbgName(), dbgPoint(t.LeftP), dbgPoint(t.RightP), dbg.Name(t.Top), dbg.Name(t.Bottom))
}

func dbgPoint(p *Point) string {
	if p == nil {
		return "Ø"
	}
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// dbgName colors the trapezoid's readable name: cyan if its Top or Bottom is
// nil, red if it has collapsed to zero height, green otherwise.
func (t *Trapezoid) dbgName() string {
	name := dbg.Name(t)
	switch {
	case t.Top == nil || t.Bottom == nil:
		return aurora.Cyan(name).String()
	case Equal(t.topY(t.midX()), t.bottomY(t.midX())):
		return aurora.Red(name).String()
	default:
		return aurora.Green(name).String()
	}
}
