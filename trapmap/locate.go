package trapmap

// Locate descends the search DAG from the root to find the leaf whose
// trapezoid contains p, per spec 4.C: at an X-node, go left if p.x is
// strictly less than the node's point (under Epsilon), else right; at a
// Y-node, go above if p is strictly above the segment, else below. Expected
// O(log n) after randomized insertion (AddSegments' shuffle), worst case
// O(n).
func (m *Map) Locate(p *Point) *Trapezoid {
	if m.Root == nil {
		return nil
	}
	leaf := m.Root.Locate(p)
	return leaf.Inner.(LeafNode).Trapezoid
}
