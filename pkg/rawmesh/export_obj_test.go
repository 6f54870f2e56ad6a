package rawmesh

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteOBJ(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		},
		Faces: []Face{
			{Indices: [4]uint32{0, 1, 2}},
		},
	}

	var out bytes.Buffer
	if err := m.WriteOBJ(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# Generated by bin2obj\n" +
		"\n" +
		"v 1.000000 2.000000 3.000000\n" +
		"v 4.000000 5.000000 6.000000\n" +
		"v 7.000000 8.000000 9.000000\n" +
		"f 1 2 3\n"
	if out.String() != want {
		t.Errorf("unexpected OBJ output:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestWriteOBJQuads(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces:    []Face{{Indices: [4]uint32{0, 1, 2, 3}}},
		Quads:    true,
	}

	var out bytes.Buffer
	if err := m.WriteOBJ(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "f 1 2 3 4\n") {
		t.Errorf("expected a 4-index f line, got:\n%s", out.String())
	}
}

func TestWriteOBJSkipsDegenerate(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		Faces: []Face{
			{Indices: [4]uint32{0, 1, 2}},
			{Indices: [4]uint32{1, 1, 2}, Degenerate: true},
			{Indices: [4]uint32{2, 0, 1}},
		},
	}

	var out bytes.Buffer
	if err := m.WriteOBJ(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if strings.Count(got, "\nf ") != 2 {
		t.Errorf("expected 2 f lines, got:\n%s", got)
	}
	if strings.Contains(got, "f 2 2 3\n") {
		t.Errorf("degenerate face leaked into output:\n%s", got)
	}
}

func TestWriteOBJVerticesOnly(t *testing.T) {
	m := &Mesh{Vertices: []Vertex{{1, 2, 3}}}

	var out bytes.Buffer
	if err := m.WriteOBJ(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if strings.Contains(got, "\nf") {
		t.Errorf("expected no f lines for a faceless mesh:\n%s", got)
	}
	if !strings.Contains(got, "v 1.000000 2.000000 3.000000\n") {
		t.Errorf("missing v line:\n%s", got)
	}
}

func TestExtractScaledToOBJ(t *testing.T) {
	data := f32le(1, 2, 3, 4, 5, 6)

	ex, _ := testExtractor(data)
	verts, err := ex.Vertices(VertexLayout{Scale: 2, Encoding: VertexF32})
	if err != nil {
		t.Fatalf("extracting vertices: %v", err)
	}

	m := &Mesh{Vertices: verts}
	var out bytes.Buffer
	if err := m.WriteOBJ(&out); err != nil {
		t.Fatalf("writing OBJ: %v", err)
	}

	want := "# Generated by bin2obj\n" +
		"\n" +
		"v 2.000000 4.000000 6.000000\n" +
		"v 8.000000 10.000000 12.000000\n"
	if out.String() != want {
		t.Errorf("unexpected OBJ output:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

// TestExtractToOBJ runs the whole pipeline over an in-memory file: an
// out-of-range index clamps to 0 and, because the face did not repeat an
// index as decoded, it is still written.
func TestExtractToOBJ(t *testing.T) {
	data := concat(0,
		f32le(1, 1, 1, 2, 2, 2), // vertex region, bytes 0..24
		u16le(0, 1, 5),          // face region, bytes 24..30
	)

	ex, _ := testExtractor(data)
	verts, err := ex.Vertices(VertexLayout{EndOffset: 24, Scale: 1, Encoding: VertexF32})
	if err != nil {
		t.Fatalf("extracting vertices: %v", err)
	}
	faces, err := ex.Faces(FaceLayout{StartOffset: 24, EndOffset: 30, Encoding: FaceU16}, len(verts))
	if err != nil {
		t.Fatalf("extracting faces: %v", err)
	}

	m := &Mesh{Vertices: verts, Faces: faces}
	var out bytes.Buffer
	if err := m.WriteOBJ(&out); err != nil {
		t.Fatalf("writing OBJ: %v", err)
	}

	want := "# Generated by bin2obj\n" +
		"\n" +
		"v 1.000000 1.000000 1.000000\n" +
		"v 2.000000 2.000000 2.000000\n" +
		"f 1 2 1\n"
	if out.String() != want {
		t.Errorf("unexpected OBJ output:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}
