package rawmesh

import (
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// WriteGLTF writes the mesh as a JSON .gltf document with the geometry
// buffer embedded as a data URI.
func (m *Mesh) WriteGLTF(w io.Writer) error {
	doc := m.document()
	for _, buf := range doc.Buffers {
		buf.EmbeddedResource()
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = false
	return enc.Encode(doc)
}

// WriteGLB writes the mesh as a binary .glb container.
func (m *Mesh) WriteGLB(w io.Writer) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(m.document())
}

// document assembles a single-node glTF scene. glTF has no quad
// primitive, so quads are split into the triangles (0 1 2) and (0 2 3).
// A mesh with no faces at all is exported as a point cloud.
func (m *Mesh) document() *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "bin2obj"
	if len(m.Vertices) == 0 {
		return doc
	}

	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v
	}

	primitive := &gltf.Primitive{
		Attributes: map[string]uint32{"POSITION": modeler.WritePosition(doc, positions)},
	}
	if indices := m.TriangleIndices(); len(indices) > 0 {
		primitive.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	} else {
		primitive.Mode = gltf.PrimitivePoints
	}

	name := m.Name
	if name == "" {
		name = "mesh"
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return doc
}

// TriangleIndices flattens the surviving faces into a triangle index
// buffer, splitting quads into (0 1 2) and (0 2 3).
func (m *Mesh) TriangleIndices() []uint32 {
	per := 3
	if m.Quads {
		per = 6
	}
	out := make([]uint32, 0, len(m.Faces)*per)
	for _, f := range m.Faces {
		if f.Degenerate {
			continue
		}
		out = append(out, f.Indices[0], f.Indices[1], f.Indices[2])
		if m.Quads {
			out = append(out, f.Indices[0], f.Indices[2], f.Indices[3])
		}
	}
	return out
}
