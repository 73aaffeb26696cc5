package trapmap

// Map is the owning arena for a trapezoidal decomposition: every trapezoid,
// every DAG node, and every inserted segment it produced. Single-threaded, as
// spec'd; no operation may suspend, and there is no cancellation beyond the
// caller abandoning the *Map. External references (a roadmap, a query
// result) must not outlive the Map that produced them.
//
// The pointer graph among trapezoids (four neighbor links), the DAG (leaves
// shared by multiple parents), and the Node<->Trapezoid back-reference is
// cyclic. Go's garbage collector handles that for us -- the recommended
// systems-language rewrite (arenas of index handles, see the design notes)
// exists precisely to break these cycles in a language without a collector.
// Map.trapezoids is kept anyway, not to break cycles, but so Teardown can
// drop every reference at once and so the invariant validator (I) can ask
// "what trapezoids currently exist" without a DAG walk.
type Map struct {
	Root *Node

	// trapezoids is the live set: every trapezoid currently reachable from a
	// leaf. Supplanted trapezoids are removed here as soon as surgery replaces
	// them, the same moment their leaf is repurposed.
	trapezoids map[*Trapezoid]struct{}

	// segments records every segment inserted so far, in insertion order, for
	// use by the follow() safety bound.
	segments []*Segment

	frame *frame
}

// newMap allocates an empty arena.
func newMap() *Map {
	return &Map{trapezoids: make(map[*Trapezoid]struct{})}
}

// register adds a newly created trapezoid to the live set and returns it, for
// use inline at each allocation site in update.go.
func (m *Map) register(t *Trapezoid) *Trapezoid {
	m.trapezoids[t] = struct{}{}
	return t
}

// unregister removes a trapezoid that has just been supplanted by surgery.
// Its leaf is about to be repurposed to point elsewhere, so after this call
// nothing in the Map reaches t.
func (m *Map) unregister(t *Trapezoid) {
	delete(m.trapezoids, t)
}

// Trapezoids returns every live trapezoid. Order is unspecified.
func (m *Map) Trapezoids() []*Trapezoid {
	out := make([]*Trapezoid, 0, len(m.trapezoids))
	for t := range m.trapezoids {
		out = append(out, t)
	}
	return out
}

// Teardown releases every trapezoid, DAG node, and segment owned by the map.
// After Teardown, m must not be used again.
func (m *Map) Teardown() {
	m.Root = nil
	m.trapezoids = nil
	m.segments = nil
	m.frame = nil
}

// Dump prints every live trapezoid's String() representation, for debugging
// (teacher: QueryGraph.PrintAllTrapezoids).
func (m *Map) Dump() {
	for t := range m.trapezoids {
		trace(t.String())
	}
}
