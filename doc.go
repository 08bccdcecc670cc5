// Package depthplanes turns a depth-sensor point grid into a set of planar
// tiles and merges the coplanar ones into clusters.
//
// 🚀 What is depthplanes?
//
//	A small, dependency-light pipeline that takes a width×height grid of 3D
//	samples and produces:
//
//	  • A quad-tree decomposition into axis-aligned rectangular leaves, each
//	    fit to a single plane
//	  • An adjacency graph linking leaves that touch along an edge
//	  • Clusters of leaves whose planes are coplanar within tolerance
//
// ✨ Design
//
//   - Instance-scoped      — every tunable constant lives on *Engine or
//     *Kernels, never behind a package-level var
//   - Deterministic        — cluster color assignment takes an injected
//     *rand.Rand, never the global source
//   - Functional options   — segment.NewEngine(opts...) mirrors the
//     options style used throughout this codebase's graph packages
//
// Under the hood:
//
//	segment/       — grid, quad-tree split, plane fit, adjacency, merge
//	depthkernels/  — per-pixel edge and normal-map kernels over raw depth
//	cmd/depthplanes/ — a CLI that runs the pipeline over synthetic fixtures
//
// Quick ASCII example, an L-shaped surface split into two planar leaves:
//
//	+-------+-------+
//	|       |      /|
//	|   A   |   B /  |
//	|       |   /    |
//	+-------+ /------+
//
//	A and B end up in separate clusters: their normals diverge past the
//	coplanar-merge tolerance.
package depthplanes
