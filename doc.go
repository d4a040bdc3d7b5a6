// Package losange is a small software rendering pipeline built around one
// demo: a four-vertex quad whose corner colors interpolate across its
// surface. The programmable part is a vertex stage that maps any vertex
// index, modulo the table length, to a fixed clip-space position and
// color; the rest of the package supplies the host plumbing a pipeline
// needs: primitive assembly by topology, a tile-parallel barycentric
// rasterizer, a framebuffer, and pipeline construction with structural
// validation of the lookup tables.
package losange
