package math

import "github.com/korkuveren/MARS/engine/core"

// VertexStride is the number of floats Vertex3D occupies in interleaved
// vertex data: position then normal.
const VertexStride = 6

/** @brief A mesh vertex. */
type Vertex3D struct {
	/** @brief The position of the vertex. */
	Position Spatial3D
	/** @brief The normal of the vertex. */
	Normal Spatial3D
}

// GeometryGenerateNormals writes the face normal of every triangle in
// indices to its three vertices.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		// NOTE: face normals only. Smoothing is a separate pass.
		normal := edge1.Cross(edge2).Normalize()
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Equals(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Equals(vert1.Normal, K_FLOAT_EPSILON)
}

func reassignIndex(indices []uint32, from uint32, to uint32) {
	for i := range indices {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indicies higher than 'from' by 1.
			indices[i]--
		}
	}
}

// GeometryDeduplicateVertices merges equal vertices and rewrites indices in
// place to point at the survivors.
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	foundCount := uint32(0)

	for v := range vertices {
		found := false
		for u := range unique {
			if Vertex3dEqual(vertices[v], unique[u]) {
				// Reassign indices, do not copy
				reassignIndex(indices, uint32(v)-foundCount, uint32(u))
				found = true
				foundCount++
				break
			}
		}
		if !found {
			unique = append(unique, vertices[v])
		}
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", len(vertices)-len(unique), len(vertices), len(unique))
	return unique
}

// GeometryInterleave flattens vertices into position and normal triples.
func GeometryInterleave(vertices []Vertex3D) []float32 {
	out := make([]float32, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
		out = append(out, v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

// GeometryBounds fits a box and a sphere around interleaved vertex data.
func GeometryBounds(data []float32) (AABB, Sphere) {
	box := NewAABBFromFloats(data, VertexStride-3)

	points := make([]Spatial3D, 0, len(data)/VertexStride)
	for i := 0; i+3 <= len(data); i += VertexStride {
		points = append(points, NewSpatial3D(data[i], data[i+1], data[i+2]))
	}
	return box, NewSphereFromPoints(points)
}
