package segment

import (
	"math/rand"
)

// Default tuning constants.
const (
	DefaultMaxResidualThreshold = 0.05
	DefaultSplitThreshold       = 0.015
	DefaultMinDotProduct        = 0.9
)

// Engine holds the tunable constants for one planar-segmentation pipeline.
// The constants are scoped to the instance rather than package-level vars:
// two Engines never share mutable state, so concurrent calls on disjoint
// PointGrids are safe as long as each caller owns its own Engine.
type Engine struct {
	maxResidualThreshold float64
	splitThreshold       float64
	minDotProduct        float64
	rng                  *rand.Rand
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithMaxResidualThreshold overrides the split-on-max trigger (default
// DefaultMaxResidualThreshold).
func WithMaxResidualThreshold(v float64) EngineOption {
	return func(e *Engine) { e.maxResidualThreshold = v }
}

// WithSplitThreshold overrides the mean-residual split trigger (default
// DefaultSplitThreshold).
func WithSplitThreshold(v float64) EngineOption {
	return func(e *Engine) { e.splitThreshold = v }
}

// WithMinDotProduct overrides the coplanar-merge normal tolerance (default
// DefaultMinDotProduct).
func WithMinDotProduct(v float64) EngineOption {
	return func(e *Engine) { e.minDotProduct = v }
}

// WithRNG overrides the per-cluster color source. Inject a seeded
// *rand.Rand to choose the sequence; the default source is seeded with 1, so
// every Engine built without this option produces the same colors.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(e *Engine) { e.rng = rng }
}

// NewEngine constructs an Engine with the default constants, then applies
// opts in order.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		maxResidualThreshold: DefaultMaxResidualThreshold,
		splitThreshold:       DefaultSplitThreshold,
		minDotProduct:        DefaultMinDotProduct,
		rng:                  rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetConstants updates maxResidualThreshold, splitThreshold, and
// minDotProduct on this Engine in one call, scoped to this instance rather
// than process-wide.
func (e *Engine) SetConstants(maxResidualThreshold, splitThreshold, minDotProduct float64) {
	e.maxResidualThreshold = maxResidualThreshold
	e.splitThreshold = splitThreshold
	e.minDotProduct = minDotProduct
}

// Segmentation is the full result of one DepthMakePlanes call: the leaf
// arena (with neighbor links and visit IDs filled in) and the clusters
// discovered over it, in discovery order.
type Segmentation struct {
	Leaves   []*Leaf
	Clusters [][]int
}

// Segment runs the full pipeline over grid (split, filter, adjacency,
// merge) and returns the resulting leaves and clusters without emitting
// triangles. DepthMakePlanes calls this and then triangulates; exposed
// separately so callers can inspect leaves and clusters directly.
func (e *Engine) Segment(grid *PointGrid) Segmentation {
	var leaves []*Leaf

	cfg := splitConfig{
		maxResidualThreshold: e.maxResidualThreshold,
		splitThreshold:       e.splitThreshold,
	}
	split(grid, Rect{X: 0, Y: 0, W: grid.Width(), H: grid.Height()}, cfg, &leaves)

	leaves = filterLeaves(leaves, grid.Width(), grid.Height())
	buildAdjacency(leaves)
	clusters := mergeClusters(leaves, e.minDotProduct, e.maxResidualThreshold)

	return Segmentation{Leaves: leaves, Clusters: clusters}
}

// DepthMakePlanes is the engine's batch entry point: given a point grid,
// it runs the full segmentation pipeline and writes a
// triangle-list vertex/color buffer, six vertices per leaf quad, one color
// per cluster. It writes at most len(outVertices) vertices and returns the
// actual count written; outVertices and outColors must have equal length.
func (e *Engine) DepthMakePlanes(grid *PointGrid, outVertices, outColors []Point) (count int, err error) {
	if len(outVertices) == 0 || len(outVertices) != len(outColors) {
		return 0, ErrBufferTooSmall
	}
	seg := e.Segment(grid)
	return emitClusters(seg.Leaves, seg.Clusters, outVertices, outColors, e.rng), nil
}
