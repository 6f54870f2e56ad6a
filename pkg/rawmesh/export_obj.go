package rawmesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the mesh as Wavefront OBJ text: a generator comment,
// one v line per vertex, one f line per surviving face. Indices are
// rebased to OBJ's 1-based convention and degenerate faces are skipped.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Generated by bin2obj\n\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %f %f %f\n", v.X(), v.Y(), v.Z())
	}

	n := m.ElementsPerFace()
	for _, f := range m.Faces {
		if f.Degenerate {
			continue
		}
		bw.WriteString("f")
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, " %d", f.Indices[i]+1)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
