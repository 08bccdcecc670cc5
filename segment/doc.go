// Package segment partitions a dense grid of 3D depth samples into planar
// patches and merges adjacent patches that share a plane.
//
// What:
//
//   - PointGrid wraps a row-major grid of 3D samples with clamped access.
//   - A recursive quad-tree splitter decomposes the grid into leaves that
//     are each approximately planar, fitting a Plane to each candidate
//     rectangle and recursing while the residual is too high.
//   - An adjacency builder finds which leaves share an edge, and on which
//     side, without ever comparing every pair of leaves.
//   - A flood-fill merger groups leaves whose planes agree into clusters.
//   - An emitter triangulates each cluster and assigns it a single color.
//
// Why:
//
//   - Depth sensors produce one 3D sample per pixel; real scenes are mostly
//     flat surfaces seen at an angle. Segmenting the grid into coplanar
//     patches up front turns a million-point cloud into a few hundred
//     quads, which is what a renderer or a collision system actually wants.
//
// Complexity:
//
//   - Splitter: O(N log N) worst case over N = W×H samples.
//   - Adjacency: O(L log L) over L leaves (bucket + sort, no O(L²) scan).
//   - Merge: O(L) flood fill over the adjacency graph.
//
// Concurrency:
//
//   - An *Engine is not safe for concurrent DepthMakePlanes calls sharing
//     one instance; construct one Engine per concurrent caller. See Engine.
package segment
