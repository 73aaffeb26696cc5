package trapmap

import "github.com/pkg/errors"

// Validate checks every structural invariant of spec 3/8 (I1-I5) against m's
// current state and returns the first violation found, or nil if m is
// consistent. It is O(n) in the number of live trapezoids and is meant for
// tests and debug builds, not the hot path.
func Validate(m *Map) error {
	for t := range m.trapezoids {
		if err := validateBackReference(t); err != nil {
			return err
		}
		if err := validateNeighborSymmetry(m, t); err != nil {
			return err
		}
		if err := validateOrdering(t); err != nil {
			return err
		}
	}
	if m.Root != nil {
		if err := validateReachability(m); err != nil {
			return err
		}
	}
	return nil
}

// validateBackReference checks I1: t.Node's leaf points back at t.
func validateBackReference(t *Trapezoid) error {
	if t.Node == nil {
		return errors.Errorf("trapezoid %s has no DAG node", t.dbgName())
	}
	leaf, ok := t.Node.Inner.(LeafNode)
	if !ok {
		return errors.Errorf("trapezoid %s's node is not a leaf", t.dbgName())
	}
	if leaf.Trapezoid != t {
		return errors.Errorf("trapezoid %s's node points at a different trapezoid", t.dbgName())
	}
	return nil
}

// validateNeighborSymmetry checks I2: if a is t's neighbor on one side, t
// is reachable from a on the matching opposite side.
func validateNeighborSymmetry(m *Map, t *Trapezoid) error {
	check := func(neighbor *Trapezoid, back1, back2 *Trapezoid, label string) error {
		if neighbor == nil {
			return nil
		}
		if _, live := m.trapezoids[neighbor]; !live {
			return errors.Errorf("trapezoid %s's %s neighbor is not live", t.dbgName(), label)
		}
		if back1 != t && back2 != t {
			return errors.Errorf("trapezoid %s's %s neighbor %s does not point back", t.dbgName(), label, neighbor.dbgName())
		}
		return nil
	}
	if err := check(t.UpperLeft, t.UpperLeft.safeUpperRight(), t.UpperLeft.safeLowerRight(), "UpperLeft"); err != nil {
		return err
	}
	if err := check(t.LowerLeft, t.LowerLeft.safeUpperRight(), t.LowerLeft.safeLowerRight(), "LowerLeft"); err != nil {
		return err
	}
	if err := check(t.UpperRight, t.UpperRight.safeUpperLeft(), t.UpperRight.safeLowerLeft(), "UpperRight"); err != nil {
		return err
	}
	if err := check(t.LowerRight, t.LowerRight.safeUpperLeft(), t.LowerRight.safeLowerLeft(), "LowerRight"); err != nil {
		return err
	}
	return nil
}

func (t *Trapezoid) safeUpperRight() *Trapezoid {
	if t == nil {
		return nil
	}
	return t.UpperRight
}
func (t *Trapezoid) safeLowerRight() *Trapezoid {
	if t == nil {
		return nil
	}
	return t.LowerRight
}
func (t *Trapezoid) safeUpperLeft() *Trapezoid {
	if t == nil {
		return nil
	}
	return t.UpperLeft
}
func (t *Trapezoid) safeLowerLeft() *Trapezoid {
	if t == nil {
		return nil
	}
	return t.LowerLeft
}

// validateOrdering checks I3: a trapezoid's left wall is strictly left of
// its right wall, and where Top/Bottom exist, Top is never below Bottom at
// either wall.
func validateOrdering(t *Trapezoid) error {
	if t.LeftP.X > t.RightP.X-Epsilon {
		return errors.Errorf("trapezoid %s has LeftP not strictly left of RightP", t.dbgName())
	}
	for _, x := range []float64{t.LeftP.X, t.RightP.X} {
		if t.topY(x) < t.bottomY(x)-Epsilon {
			return errors.Errorf("trapezoid %s has Top below Bottom at x=%g", t.dbgName(), x)
		}
	}
	return nil
}

// validateReachability checks I5: every live trapezoid is reachable from the
// root via exactly its own leaf (no orphans, no stray leaves).
func validateReachability(m *Map) error {
	reached := make(map[*Trapezoid]struct{})
	for leaf := range IterateLeaves(m.Root) {
		reached[leaf] = struct{}{}
	}
	for t := range m.trapezoids {
		if _, ok := reached[t]; !ok {
			return errors.Errorf("trapezoid %s is live but not reachable from the root", t.dbgName())
		}
	}
	for leaf := range reached {
		if _, ok := m.trapezoids[leaf]; !ok {
			return errors.Errorf("leaf %s is reachable but not in the live set", leaf.dbgName())
		}
	}
	return nil
}
