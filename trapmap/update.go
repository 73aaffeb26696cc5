package trapmap

import "math/rand"

// InsertSegment performs the incremental update for a single new segment:
// locate the trapezoids it crosses (follow), then perform the one- or
// multi-trapezoid local surgery described in spec 4.E. It is the caller's
// responsibility to insert segments whose endpoints are in general position
// relative to everything already in the map.
func InsertSegment(m *Map, seg *Segment) {
	crossed := follow(m, seg)
	tracef("inserting %s across %d trapezoid(s)", seg.String(), len(crossed))

	if len(crossed) == 1 {
		insertSingle(m, crossed[0], seg)
	} else {
		insertMulti(m, crossed, seg)
	}
	m.segments = append(m.segments, seg)
}

// boundaryReplacement picks, for one side of a split, the trapezoid that a
// former external neighbor should now point at: the freshly created
// "spacer" trapezoid (A, D, leftTrap, rightTrap) if it exists, or else
// whichever of the two new pieces directly inherits that side.
func boundaryReplacement(spacer, upperPiece, lowerPiece *Trapezoid) (forUpper, forLower *Trapezoid) {
	if spacer != nil {
		return spacer, spacer
	}
	return upperPiece, lowerPiece
}

// retargetLeftNeighbors fixes up the trapezoids that used to border old on
// its left (old.UpperLeft / old.LowerLeft) so their right-side pointers to
// old now point at the correct replacement, per spec 4.E's "external
// neighbor updates" rule.
func retargetLeftNeighbors(old *Trapezoid, forUpper, forLower *Trapezoid) {
	for _, neighbor := range distinctTrapezoids(old.UpperLeft, old.LowerLeft) {
		if neighbor.UpperRight == old {
			neighbor.UpperRight = forUpper
		}
		if neighbor.LowerRight == old {
			neighbor.LowerRight = forLower
		}
	}
}

// retargetRightNeighbors is the mirror of retargetLeftNeighbors for the
// right side (UpperRight / LowerRight -> neighbor.UpperLeft / LowerLeft).
func retargetRightNeighbors(old *Trapezoid, forUpper, forLower *Trapezoid) {
	for _, neighbor := range distinctTrapezoids(old.UpperRight, old.LowerRight) {
		if neighbor.UpperLeft == old {
			neighbor.UpperLeft = forUpper
		}
		if neighbor.LowerLeft == old {
			neighbor.LowerLeft = forLower
		}
	}
}

// distinctTrapezoids returns the non-nil, de-duplicated members of a and b --
// a and b are frequently the same pointer (the "duplicated neighbor"
// invariant of spec 3).
func distinctTrapezoids(a, b *Trapezoid) []*Trapezoid {
	var out []*Trapezoid
	if a != nil {
		out = append(out, a)
	}
	if b != nil && b != a {
		out = append(out, b)
	}
	return out
}

// insertSingle handles spec 4.E's case k=1: seg crosses exactly one
// trapezoid tau, which is split into up to four pieces (A, B, C, D).
func insertSingle(m *Map, tau *Trapezoid, seg *Segment) {
	L, R := seg.Left, seg.Right
	hasA := L.X > tau.LeftP.X+Epsilon
	hasD := R.X < tau.RightP.X-Epsilon

	oldUpperLeft, oldLowerLeft := tau.UpperLeft, tau.LowerLeft
	oldUpperRight, oldLowerRight := tau.UpperRight, tau.LowerRight

	b := &Trapezoid{LeftP: L, RightP: R, Top: tau.Top, Bottom: seg}
	c := &Trapezoid{LeftP: L, RightP: R, Top: seg, Bottom: tau.Bottom}

	var a, d *Trapezoid
	if hasA {
		a = &Trapezoid{LeftP: tau.LeftP, RightP: L, Top: tau.Top, Bottom: tau.Bottom}
		a.UpperLeft, a.LowerLeft = oldUpperLeft, oldLowerLeft
		a.UpperRight, a.LowerRight = b, c
		b.UpperLeft, b.LowerLeft = a, a
		c.UpperLeft, c.LowerLeft = a, a
	} else {
		b.UpperLeft, b.LowerLeft = oldUpperLeft, oldUpperLeft
		c.UpperLeft, c.LowerLeft = oldLowerLeft, oldLowerLeft
	}
	if hasD {
		d = &Trapezoid{LeftP: R, RightP: tau.RightP, Top: tau.Top, Bottom: tau.Bottom}
		d.UpperRight, d.LowerRight = oldUpperRight, oldLowerRight
		d.UpperLeft, d.LowerLeft = b, c
		b.UpperRight, b.LowerRight = d, d
		c.UpperRight, c.LowerRight = d, d
	} else {
		b.UpperRight, b.LowerRight = oldUpperRight, oldUpperRight
		c.UpperRight, c.LowerRight = oldLowerRight, oldLowerRight
	}

	leftForUpper, leftForLower := boundaryReplacement(a, b, c)
	retargetLeftNeighbors(tau, leftForUpper, leftForLower)
	rightForUpper, rightForLower := boundaryReplacement(d, b, c)
	retargetRightNeighbors(tau, rightForUpper, rightForLower)

	m.unregister(tau)
	for _, t := range []*Trapezoid{a, b, c, d} {
		if t != nil {
			m.register(t)
		}
	}

	bNode := newLeaf(b)
	cNode := newLeaf(c)
	ySplit := &Node{Inner: YNode{Segment: seg, Above: bNode, Below: cNode}}

	n := tau.Node
	switch {
	case hasA && hasD:
		aNode := newLeaf(a)
		dNode := newLeaf(d)
		n.Inner = XNode{Point: L, Left: aNode, Right: &Node{Inner: XNode{Point: R, Left: ySplit, Right: dNode}}}
	case hasA:
		aNode := newLeaf(a)
		n.Inner = XNode{Point: L, Left: aNode, Right: ySplit}
	case hasD:
		dNode := newLeaf(d)
		n.Inner = XNode{Point: R, Left: ySplit, Right: dNode}
	default:
		n.Inner = ySplit.Inner
	}
}

// chainPiece is one not-yet-merged slice of the upper or lower chain in the
// multi-trapezoid case, tracked alongside the original trapezoid it came
// from so the merge pass can test boundary conditions against the original
// geometry.
type chainPiece struct {
	*Trapezoid
	origRightP *Point // = Trapezoid.RightP before any merge, for the vertex-below/above-s test
}

// buildChain constructs the raw (pre-merge) upper or lower trapezoids for
// each crossed trapezoid, clipped to [L, R].
func buildChain(crossed []*Trapezoid, seg *Segment, upper bool) []chainPiece {
	L, R := seg.Left, seg.Right
	out := make([]chainPiece, len(crossed))
	for i, tau := range crossed {
		leftP, rightP := tau.LeftP, tau.RightP
		if i == 0 {
			leftP = L
		}
		if i == len(crossed)-1 {
			rightP = R
		}
		var t *Trapezoid
		if upper {
			t = &Trapezoid{LeftP: leftP, RightP: rightP, Top: tau.Top, Bottom: seg}
		} else {
			t = &Trapezoid{LeftP: leftP, RightP: rightP, Top: seg, Bottom: tau.Bottom}
		}
		out[i] = chainPiece{Trapezoid: t, origRightP: tau.RightP}
	}
	return out
}

// mergeRuns coalesces consecutive chain pieces into groups, per the "Important
// merging step" of spec 4.E: an upper boundary between piece i and i+1 is
// erased (they merge into one trapezoid) when they share the same Top and the
// shared vertex lies below seg; a lower boundary is erased when they share
// the same Bottom and the vertex lies above seg. It returns, for each
// original index, the merged trapezoid that now owns it (so the DAG surgery
// below can find the right shared leaf for every i), plus the list of merged
// trapezoids in left-to-right order.
func mergeRuns(pieces []chainPiece, seg *Segment, upper bool) (ownerOf []*Trapezoid, merged []*Trapezoid) {
	ownerOf = make([]*Trapezoid, len(pieces))
	runStart := 0
	flushRun := func(end int) {
		lo, hi := pieces[runStart], pieces[end]
		var t *Trapezoid
		if upper {
			t = &Trapezoid{LeftP: lo.LeftP, RightP: hi.RightP, Top: lo.Top, Bottom: seg}
		} else {
			t = &Trapezoid{LeftP: lo.LeftP, RightP: hi.RightP, Top: seg, Bottom: lo.Bottom}
		}
		for i := runStart; i <= end; i++ {
			ownerOf[i] = t
		}
		merged = append(merged, t)
	}

	for i := 0; i < len(pieces)-1; i++ {
		vertex := pieces[i].origRightP
		var sameBoundary, vertexSide bool
		if upper {
			sameBoundary = pieces[i].Top == pieces[i+1].Top
			vertexSide = !seg.IsAbove(vertex) // vertex below or on seg
		} else {
			sameBoundary = pieces[i].Bottom == pieces[i+1].Bottom
			vertexSide = seg.IsAbove(vertex) // vertex strictly above seg
		}
		if !(sameBoundary && vertexSide) {
			flushRun(i)
			runStart = i + 1
		}
	}
	flushRun(len(pieces) - 1)
	return ownerOf, merged
}

// insertMulti handles spec 4.E's case k >= 2: seg crosses the ordered
// trapezoids in crossed, splitting each into an upper and lower piece,
// merging adjacent same-boundary pieces, and rewiring the DAG so that a
// merged trapezoid's leaf is shared by every original trapezoid it replaces.
func insertMulti(m *Map, crossed []*Trapezoid, seg *Segment) {
	L, R := seg.Left, seg.Right
	first, last := crossed[0], crossed[len(crossed)-1]

	hasLeftTrap := first.LeftP.X < L.X-Epsilon
	hasRightTrap := last.RightP.X > R.X+Epsilon

	oldFirstUpperLeft, oldFirstLowerLeft := first.UpperLeft, first.LowerLeft
	oldLastUpperRight, oldLastLowerRight := last.UpperRight, last.LowerRight

	upperPieces := buildChain(crossed, seg, true)
	lowerPieces := buildChain(crossed, seg, false)
	upperOwner, upperMerged := mergeRuns(upperPieces, seg, true)
	lowerOwner, lowerMerged := mergeRuns(lowerPieces, seg, false)

	var leftTrap, rightTrap *Trapezoid
	if hasLeftTrap {
		leftTrap = &Trapezoid{LeftP: first.LeftP, RightP: L, Top: first.Top, Bottom: first.Bottom}
		leftTrap.UpperLeft, leftTrap.LowerLeft = oldFirstUpperLeft, oldFirstLowerLeft
	}
	if hasRightTrap {
		rightTrap = &Trapezoid{LeftP: R, RightP: last.RightP, Top: last.Top, Bottom: last.Bottom}
		rightTrap.UpperRight, rightTrap.LowerRight = oldLastUpperRight, oldLastLowerRight
	}

	// Chain the merged upper/lower trapezoids left-to-right (duplicated
	// upper/lower pointers on each horizontal side, per spec 3).
	chainHorizontally(leftTrap, upperMerged, rightTrap, oldFirstUpperLeft, oldFirstLowerLeft, oldLastUpperRight, oldLastLowerRight, true)
	chainHorizontally(leftTrap, lowerMerged, rightTrap, oldFirstUpperLeft, oldFirstLowerLeft, oldLastUpperRight, oldLastLowerRight, false)

	if leftTrap != nil {
		leftTrap.UpperRight, leftTrap.LowerRight = upperMerged[0], lowerMerged[0]
	}
	if rightTrap != nil {
		rightTrap.UpperLeft, rightTrap.LowerLeft = upperMerged[len(upperMerged)-1], lowerMerged[len(lowerMerged)-1]
	}

	leftForUpper, leftForLower := boundaryReplacement(leftTrap, upperMerged[0], lowerMerged[0])
	retargetLeftNeighbors(first, leftForUpper, leftForLower)
	rightForUpper, rightForLower := boundaryReplacement(rightTrap, upperMerged[len(upperMerged)-1], lowerMerged[len(lowerMerged)-1])
	retargetRightNeighbors(last, rightForUpper, rightForLower)

	for _, tau := range crossed {
		m.unregister(tau)
	}
	for _, t := range upperMerged {
		m.register(t)
	}
	for _, t := range lowerMerged {
		m.register(t)
	}
	if leftTrap != nil {
		m.register(leftTrap)
	}
	if rightTrap != nil {
		m.register(rightTrap)
	}

	// One leaf per merged trapezoid -- this is the DAG sharing: several
	// original indices may point at the same leaf below.
	upperLeaf := make([]*Node, len(upperMerged))
	for i, t := range upperMerged {
		upperLeaf[i] = newLeaf(t)
	}
	lowerLeaf := make([]*Node, len(lowerMerged))
	for i, t := range lowerMerged {
		lowerLeaf[i] = newLeaf(t)
	}
	leafOfOwner := func(owner []*Trapezoid, leaves []*Node, merged []*Trapezoid, t *Trapezoid) *Node {
		for i, m := range merged {
			if m == t {
				return leaves[i]
			}
		}
		return nil
	}

	var leftLeaf, rightLeaf *Node
	if leftTrap != nil {
		leftLeaf = newLeaf(leftTrap)
	}
	if rightTrap != nil {
		rightLeaf = newLeaf(rightTrap)
	}

	for i, tau := range crossed {
		above := leafOfOwner(upperOwner, upperLeaf, upperMerged, upperOwner[i])
		below := leafOfOwner(lowerOwner, lowerLeaf, lowerMerged, lowerOwner[i])
		base := YNode{Segment: seg, Above: above, Below: below}

		n := tau.Node
		switch {
		case i == 0 && leftTrap != nil:
			n.Inner = XNode{Point: L, Left: leftLeaf, Right: &Node{Inner: base}}
		case i == len(crossed)-1 && rightTrap != nil:
			n.Inner = XNode{Point: R, Left: &Node{Inner: base}, Right: rightLeaf}
		default:
			n.Inner = base
		}
	}
}

// chainHorizontally wires a run of merged trapezoids (all upper, or all
// lower) left-to-right, with the chain's two ends attaching to leftTrap /
// rightTrap when present, or to the original boundary trapezoid's external
// neighbors otherwise.
func chainHorizontally(leftTrap *Trapezoid, chain []*Trapezoid, rightTrap *Trapezoid,
	oldFirstUpperLeft, oldFirstLowerLeft, oldLastUpperRight, oldLastLowerRight *Trapezoid, upper bool) {
	for i, t := range chain {
		if i == 0 {
			if leftTrap != nil {
				t.UpperLeft, t.LowerLeft = leftTrap, leftTrap
			} else if upper {
				t.UpperLeft, t.LowerLeft = oldFirstUpperLeft, oldFirstUpperLeft
			} else {
				t.UpperLeft, t.LowerLeft = oldFirstLowerLeft, oldFirstLowerLeft
			}
		} else {
			t.UpperLeft, t.LowerLeft = chain[i-1], chain[i-1]
		}

		if i == len(chain)-1 {
			if rightTrap != nil {
				t.UpperRight, t.LowerRight = rightTrap, rightTrap
			} else if upper {
				t.UpperRight, t.LowerRight = oldLastUpperRight, oldLastUpperRight
			} else {
				t.UpperRight, t.LowerRight = oldLastLowerRight, oldLastLowerRight
			}
		} else {
			t.UpperRight, t.LowerRight = chain[i+1], chain[i+1]
		}
	}
}

// AddSegments inserts every segment of segs into m, in a pseudo-random
// permutation driven by rng. This is what gives the expected O(n log n)
// construction time. Pass a fixed-seed *rand.Rand for reproducible tests; a
// nil rng uses a source with the fixed seed 1, so the order is the same on
// every run, since the core has no legitimate use for unpredictable
// behavior and predictable failures are easier to debug.
func AddSegments(m *Map, segs []*Segment, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	order := make([]*Segment, len(segs))
	copy(order, segs)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, seg := range order {
		InsertSegment(m, seg)
	}
}

// BuildTrapezoidalMap is the first external entry point of spec 6: it builds
// the bounding frame sized to the given segments and inserts all of them in
// a random permutation. A structural error during construction (a broken
// neighbor graph, an oversized follow() walk) is surfaced to the caller by
// the root trapnav package, which recovers the panic raised by fatalf.
func BuildTrapezoidalMap(segs []*Segment, rng *rand.Rand) *Map {
	m := NewMap(segs)
	AddSegments(m, segs, rng)
	return m
}
