// Package depthkernels implements the per-pixel depth-buffer kernels that
// run upstream of segment's quad-tree decomposition: edge-strength
// extraction straight off the raw sensor buffer, and per-pixel surface
// normal estimation from a converted point buffer.
//
// These kernels are hot-loop, per-frame work over the full sensor
// resolution, so Kernels pools its scratch buffers across calls with
// sync.Pool rather than allocating on every frame; the pool is scoped to
// one Kernels instance; it is never a package-level global, for the same
// reason segment.Engine scopes its tunables to the instance rather than a
// process-wide mutable constant.
package depthkernels
