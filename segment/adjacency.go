package segment

import "sort"

// breakEvent marks the start or end of a leaf's span along the sweep axis,
// tagged with the side of that leaf which touches the swept coordinate.
type breakEvent struct {
	at   int  // y for the horizontal pass, x for the vertical pass
	end  bool // false = Start, true = End; End sorts before Start at equal `at`
	side Side
	leaf int
}

// eventLess orders events by (at, kind, side), with End < Start and
// Left < Right / Top < Bottom when at and kind tie. Spans are half-open
// ([start, end)), so an End at coordinate c must be retired before a Start
// at that same c is admitted — otherwise two leaves that merely touch at a
// single corner (one's span ending exactly where the other's begins) would
// see each other's slot still occupied and link spuriously.
func eventLess(a, b breakEvent) bool {
	if a.at != b.at {
		return a.at < b.at
	}
	if a.end != b.end {
		return a.end // End (true) before Start (false)
	}
	return a.side < b.side
}

// buildAdjacency computes, for every ordered pair of leaves whose rectangles
// share a non-zero-length colinear edge, the (index, side) neighbor links on
// both leaves. It runs a horizontal (left/right) sweep and a vertical
// (top/bottom) sweep over bucketed break events rather than comparing every
// pair of leaves.
func buildAdjacency(leaves []*Leaf) {
	horizontalAdjacency(leaves)
	verticalAdjacency(leaves)
}

// horizontalAdjacency links leaves that share a vertical edge: one leaf's
// right edge at column c coincides with another leaf's left edge at c.
func horizontalAdjacency(leaves []*Leaf) {
	leftBuckets := map[int][]int{}  // keyed by rect.X: leaves whose left edge is at the key
	rightBuckets := map[int][]int{} // keyed by rect.Right(): leaves whose right edge is at the key

	for i, leaf := range leaves {
		leftBuckets[leaf.Rect.X] = append(leftBuckets[leaf.Rect.X], i)
		rightBuckets[leaf.Rect.Right()] = append(rightBuckets[leaf.Rect.Right()], i)
	}

	for column, leftLeaves := range leftBuckets {
		rightLeaves, ok := rightBuckets[column]
		if !ok {
			continue
		}

		var events []breakEvent
		for _, i := range rightLeaves {
			r := leaves[i].Rect
			events = append(events,
				breakEvent{at: r.Y, end: false, side: Right, leaf: i},
				breakEvent{at: r.Bottom(), end: true, side: Right, leaf: i},
			)
		}
		for _, i := range leftLeaves {
			r := leaves[i].Rect
			events = append(events,
				breakEvent{at: r.Y, end: false, side: Left, leaf: i},
				breakEvent{at: r.Bottom(), end: true, side: Left, leaf: i},
			)
		}

		sweep(leaves, events)
	}
}

// verticalAdjacency links leaves that share a horizontal edge: one leaf's
// bottom edge at row c coincides with another leaf's top edge at c.
func verticalAdjacency(leaves []*Leaf) {
	topBuckets := map[int][]int{}    // keyed by rect.Y: leaves whose top edge is at the key
	bottomBuckets := map[int][]int{} // keyed by rect.Bottom(): leaves whose bottom edge is at the key

	for i, leaf := range leaves {
		topBuckets[leaf.Rect.Y] = append(topBuckets[leaf.Rect.Y], i)
		bottomBuckets[leaf.Rect.Bottom()] = append(bottomBuckets[leaf.Rect.Bottom()], i)
	}

	for row, topLeaves := range topBuckets {
		bottomLeaves, ok := bottomBuckets[row]
		if !ok {
			continue
		}

		var events []breakEvent
		for _, i := range bottomLeaves {
			r := leaves[i].Rect
			events = append(events,
				breakEvent{at: r.X, end: false, side: Bottom, leaf: i},
				breakEvent{at: r.Right(), end: true, side: Bottom, leaf: i},
			)
		}
		for _, i := range topLeaves {
			r := leaves[i].Rect
			events = append(events,
				breakEvent{at: r.X, end: false, side: Top, leaf: i},
				breakEvent{at: r.Right(), end: true, side: Top, leaf: i},
			)
		}

		sweep(leaves, events)
	}
}

// sweep processes a sorted break-event stream for one shared column or row,
// maintaining one active-leaf slot per side. A Start places the leaf in its
// slot; if the opposite slot is occupied, the two occupants become mutual
// neighbors, each tagged with its own side (the side along which the other
// leaf sits, from its own point of view). An End clears that side's slot.
func sweep(leaves []*Leaf, events []breakEvent) {
	sort.Slice(events, func(i, j int) bool { return eventLess(events[i], events[j]) })

	var slot [4]int // indexed by Side; -1 means empty
	slot[0], slot[1], slot[2], slot[3] = -1, -1, -1, -1

	for _, ev := range events {
		if ev.end {
			if slot[ev.side] == ev.leaf {
				slot[ev.side] = -1
			}
			continue
		}

		slot[ev.side] = ev.leaf
		opp := ev.side.Opposite()
		if occupant := slot[opp]; occupant != -1 {
			leaves[occupant].Neighbors = append(leaves[occupant].Neighbors, Neighbor{LeafIndex: ev.leaf, Side: opp})
			leaves[ev.leaf].Neighbors = append(leaves[ev.leaf].Neighbors, Neighbor{LeafIndex: occupant, Side: ev.side})
		}
	}
}
