package trapmap

// follow finds the ordered list of trapezoids that seg crosses, per spec
// 4.D. It assumes seg's endpoints are in general position relative to the
// current decomposition.
func follow(m *Map, seg *Segment) []*Trapezoid {
	cur := m.Locate(seg.Left)
	if cur == nil {
		fatalf("follow: could not locate left endpoint of segment")
	}

	result := []*Trapezoid{cur}

	// Safety rail: cap the walk well above any legitimate chain length so a
	// broken neighbor graph fails fast instead of looping forever.
	bound := 4*len(m.segments) + 16
	steps := 0

	for cur.RightP.X < seg.Right.X-Epsilon {
		steps++
		if steps > bound {
			fatalf("follow: exceeded safety bound of %d steps, neighbor graph is likely broken", bound)
		}

		var next *Trapezoid
		if seg.IsAbove(cur.RightP) {
			next = cur.LowerRight
		} else {
			next = cur.UpperRight
		}

		if next == nil {
			fatalf("follow: trapezoid %s has no right neighbor on the side the segment takes", cur.dbgName())
		}
		if next == cur {
			fatalf("follow: circular neighbor link at trapezoid %s", cur.dbgName())
		}

		cur = next
		result = append(result, cur)
	}

	return result
}
