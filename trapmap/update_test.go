package trapmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyMapIsOneTrapezoid(t *testing.T) {
	m := NewMap(nil)
	require.Len(t, m.Trapezoids(), 1)
	assert.NoError(t, Validate(m))

	t.Run("locate anywhere inside the default frame lands in the one trapezoid", func(t *testing.T) {
		only := m.Trapezoids()[0]
		assert.Same(t, only, m.Locate(&Point{50, 50}))
	})
}

func TestSingleSegmentProducesFourTrapezoids(t *testing.T) {
	seg := NewSegment(&Point{0, 0}, &Point{10, 0}, 0)
	m := NewMap([]*Segment{seg})
	InsertSegment(m, seg)

	require.Len(t, m.Trapezoids(), 4, "a segment strictly inside the frame on both ends splits into A, B, C, D")
	assert.NoError(t, Validate(m))

	above := m.Locate(&Point{5, 0.5})
	below := m.Locate(&Point{5, -0.5})
	left := m.Locate(&Point{-0.5, 0})
	right := m.Locate(&Point{10.5, 0})

	assert.NotSame(t, above, below)
	assert.NotSame(t, left, right)
	assert.NotSame(t, above, left)
	assert.NotSame(t, above, right)

	assert.Same(t, seg, above.Bottom)
	assert.Same(t, seg, below.Top)
	assert.Same(t, above, left.UpperRight, "left spacer trapezoid should border both B and C")
	assert.Same(t, below, left.LowerRight)
	assert.Same(t, above, right.UpperLeft)
	assert.Same(t, below, right.LowerLeft)
}

func TestSingleSegmentFlushWithFrameProducesTwoTrapezoids(t *testing.T) {
	// A segment whose endpoints coincide with the frame's own left/right walls
	// has no A or D spacer.
	m := NewMap(nil)
	frameWidth := m.frame.maxX - m.frame.minX
	left := &Point{m.frame.minX, 0}
	right := &Point{m.frame.minX + frameWidth, 0}
	seg := NewSegment(left, right, 0)
	InsertSegment(m, seg)

	assert.Len(t, m.Trapezoids(), 2)
	assert.NoError(t, Validate(m))
}

func TestMergeRunsCoalescesSharedBoundary(t *testing.T) {
	// Three consecutive pieces all topped by the same ceiling segment, with
	// their shared vertices below the new segment, should merge into one.
	ceiling := NewSegment(&Point{-100, 10}, &Point{100, 10}, -1)
	seg := NewSegment(&Point{-10, 0}, &Point{10, 0}, 0)

	pieces := []chainPiece{
		{Trapezoid: &Trapezoid{LeftP: &Point{-10, 0}, RightP: &Point{-3, 0}, Top: ceiling, Bottom: seg}, origRightP: &Point{-3, 0}},
		{Trapezoid: &Trapezoid{LeftP: &Point{-3, 0}, RightP: &Point{4, 0}, Top: ceiling, Bottom: seg}, origRightP: &Point{4, 0}},
		{Trapezoid: &Trapezoid{LeftP: &Point{4, 0}, RightP: &Point{10, 0}, Top: ceiling, Bottom: seg}, origRightP: &Point{10, 0}},
	}

	owner, merged := mergeRuns(pieces, seg, true)
	require.Len(t, merged, 1, "all three pieces share Top and their vertices are below seg")
	assert.Same(t, merged[0], owner[0])
	assert.Same(t, merged[0], owner[1])
	assert.Same(t, merged[0], owner[2])
	assert.Equal(t, pieces[0].LeftP, merged[0].LeftP)
	assert.Equal(t, pieces[2].RightP, merged[0].RightP)
}

func TestMergeRunsKeepsDistinctBoundariesSeparate(t *testing.T) {
	topA := NewSegment(&Point{-100, 10}, &Point{0, 10}, -1)
	topB := NewSegment(&Point{0, 10}, &Point{100, 20}, -1)
	seg := NewSegment(&Point{-10, 0}, &Point{10, 0}, 0)

	pieces := []chainPiece{
		{Trapezoid: &Trapezoid{LeftP: &Point{-10, 0}, RightP: &Point{0, 0}, Top: topA, Bottom: seg}, origRightP: &Point{0, 0}},
		{Trapezoid: &Trapezoid{LeftP: &Point{0, 0}, RightP: &Point{10, 0}, Top: topB, Bottom: seg}, origRightP: &Point{10, 0}},
	}

	_, merged := mergeRuns(pieces, seg, true)
	assert.Len(t, merged, 2, "different Top segments never merge")
}

func TestRandomizedInsertionOrderProducesConsistentMap(t *testing.T) {
	segs := []*Segment{
		NewSegment(&Point{0, 0}, &Point{10, 0}, 0),
		NewSegment(&Point{0, 5}, &Point{10, 5}, 1),
		NewSegment(&Point{-5, -5}, &Point{-5, 5}, 2),
	}
	// obstacleID 2's segment is swapped for a nearly vertical one (its
	// endpoints differ in x by about 1e-9); once inserted it bounds the
	// trapezoids beside it like any other segment.
	segs[2] = NewSegment(&Point{-5, -5}, &Point{-4.999999999, 5}, 2)

	for _, seed := range []int64{1, 2, 3, 4, 5} {
		m := BuildTrapezoidalMap(segs, rand.New(rand.NewSource(seed)))
		assert.NoError(t, Validate(m), "seed %d", seed)
	}
}
