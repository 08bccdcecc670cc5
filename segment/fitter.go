package segment

import "math"

// corners holds the four corner samples selected for a candidate rectangle,
// in top-left, top-right, bottom-left, bottom-right order.
type corners [4]Point

// selectCorners scans inward from each of rect's four corners, in row-major
// order, for the first valid sample. The scan covers 0 <= x <= w, 0 <= y <= h
// (inclusive of the far edge, with PointGrid.At's clamping), so a boundary
// leaf can pick up samples on its shared edge with the next leaf. Reports ok
// = false if fewer than four corners were found.
func selectCorners(grid *PointGrid, rect Rect) (c corners, ok bool) {
	found := 0

	for y := 0; y <= rect.H && !c[0].IsValid(); y++ {
		for x := 0; x <= rect.W && !c[0].IsValid(); x++ {
			if p := grid.At(rect.X+x, rect.Y+y); p.IsValid() {
				c[0] = p
				found++
			}
		}
	}
	for y := 0; y <= rect.H && !c[1].IsValid(); y++ {
		for x := rect.W; x >= 0 && !c[1].IsValid(); x-- {
			if p := grid.At(rect.X+x, rect.Y+y); p.IsValid() {
				c[1] = p
				found++
			}
		}
	}
	for y := rect.H; y >= 0 && !c[2].IsValid(); y-- {
		for x := 0; x <= rect.W && !c[2].IsValid(); x++ {
			if p := grid.At(rect.X+x, rect.Y+y); p.IsValid() {
				c[2] = p
				found++
			}
		}
	}
	for y := rect.H; y >= 0 && !c[3].IsValid(); y-- {
		for x := rect.W; x >= 0 && !c[3].IsValid(); x-- {
			if p := grid.At(rect.X+x, rect.Y+y); p.IsValid() {
				c[3] = p
				found++
			}
		}
	}

	return c, found >= 4
}

// fitPlane computes a candidate normal from the corner samples, trying the
// fallback chain v1×v2, v1×v3, v2×v3 in order until one is non-zero. Reports
// ok = false if the rectangle is degenerate (all three cross products zero).
func fitPlane(c corners) (plane Plane, ok bool) {
	v1 := c[3].Sub(c[1]) // pbr - ptr
	v2 := c[1].Sub(c[0]) // ptr - ptl
	v3 := c[2].Sub(c[0]) // pbl - ptl

	n := v1.Cross(v2)
	if n.Norm() == 0 {
		n = v1.Cross(v3)
	}
	if n.Norm() == 0 {
		n = v2.Cross(v3)
	}
	if n.Norm() == 0 {
		return Plane{}, false
	}

	return Plane{Normal: n.Normalize(), Anchor: c[0]}, true
}

// scanResidual walks every sample at pixel offsets 0 <= x <= w, 0 <= y <= h
// inside rect (inclusive of the far edge, clamped), accumulating the mean
// absolute plane distance over valid samples and flagging whether any single
// sample's distance exceeds maxResidual (the split-on-max trigger).
func scanResidual(grid *PointGrid, rect Rect, plane Plane, maxResidual float64) (meanResidual float64, anyExceedsMax bool) {
	var sum float64
	var count int

	for y := 0; y <= rect.H; y++ {
		for x := 0; x <= rect.W; x++ {
			p := grid.At(rect.X+x, rect.Y+y)
			if !p.IsValid() {
				continue
			}
			d := math.Abs(plane.Distance(p))
			if d > maxResidual {
				anyExceedsMax = true
			}
			sum += d
			count++
		}
	}

	if count == 0 {
		return 0, anyExceedsMax
	}
	return sum / float64(count), anyExceedsMax
}
