package segment

// splitConfig carries the tunables the splitter needs. It is a narrow view
// of Engine so the recursion doesn't need the whole engine in scope.
type splitConfig struct {
	maxResidualThreshold float64
	splitThreshold       float64
}

// split recursively decomposes rect over grid, appending one Leaf per
// terminal region to leaves. The quad-tree itself is never retained — only
// the flat list of leaves survives the call.
func split(grid *PointGrid, rect Rect, cfg splitConfig, leaves *[]*Leaf) {
	c, ok := selectCorners(grid, rect)
	if !ok {
		return // fewer than four valid corners: abandon, do not split
	}

	plane, ok := fitPlane(c)
	if !ok {
		return // degenerate rectangle: all three cross products zero
	}

	meanResidual, anyExceedsMax := scanResidual(grid, rect, plane, cfg.maxResidualThreshold)

	// A 1x1 rect cannot shrink further (halving it reproduces the parent);
	// accept it whatever its residual and let the leaf filter judge it.
	if (anyExceedsMax || meanResidual > cfg.splitThreshold) && (rect.W > 1 || rect.H > 1) {
		left, right := splitRect(rect)
		split(grid, left, cfg, leaves)
		split(grid, right, cfg, leaves)
		return
	}

	*leaves = append(*leaves, &Leaf{
		Rect:         rect,
		Plane:        plane,
		Corners:      c,
		MeanResidual: meanResidual,
	})
}

// splitRect halves rect along its longer axis. When w > h it splits
// vertically into a ceiling-width left half and a floor-width right half
// (deliberately asymmetric so odd widths partition exactly); otherwise it
// splits horizontally the same way.
func splitRect(rect Rect) (a, b Rect) {
	if rect.W > rect.H {
		half := rect.W / 2
		a = Rect{X: rect.X, Y: rect.Y, W: rect.W - half, H: rect.H}
		b = Rect{X: a.Right(), Y: rect.Y, W: half, H: rect.H}
		return a, b
	}
	half := rect.H / 2
	a = Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H - half}
	b = Rect{X: rect.X, Y: a.Bottom(), W: rect.W, H: half}
	return a, b
}
