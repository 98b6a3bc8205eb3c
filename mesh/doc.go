// Package mesh provides the one octree.SurfaceExtractor implementation
// this repository ships: a dual-contouring extractor that places one
// vertex per leaf cell from edge sign-change sampling, and collapses a
// fully-resolved 8-cluster into a single Leaf when its children's
// normals agree closely enough to call the cluster flat.
package mesh
