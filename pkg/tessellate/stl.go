package tessellate

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/kernel"
)

// stlHeaderSize is the fixed byte length of a binary STL header.
const stlHeaderSize = 80

// WriteSTL writes the meshes as one binary STL solid. Part names and colors
// do not survive; STL carries bare triangles only.
func WriteSTL(w io.Writer, meshes []*kernel.Mesh) error {
	var header [stlHeaderSize]byte
	copy(header[:], "dactyl-keyboard")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: write header: %w", err)
	}

	var total uint32
	for _, m := range meshes {
		total += uint32(m.TriangleCount())
	}
	if err := binary.Write(w, binary.LittleEndian, total); err != nil {
		return fmt.Errorf("stl: write triangle count: %w", err)
	}

	// 50 bytes per triangle: normal, three vertices, attribute count.
	var tri [12]float32
	for _, m := range meshes {
		for t := 0; t < m.TriangleCount(); t++ {
			i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]

			// Use the first vertex's normal as the face normal.
			tri[0] = m.Normals[i0*3]
			tri[1] = m.Normals[i0*3+1]
			tri[2] = m.Normals[i0*3+2]
			for j, idx := range []uint32{i0, i1, i2} {
				tri[3+j*3] = m.Vertices[idx*3]
				tri[4+j*3] = m.Vertices[idx*3+1]
				tri[5+j*3] = m.Vertices[idx*3+2]
			}
			if err := binary.Write(w, binary.LittleEndian, tri); err != nil {
				return fmt.Errorf("stl: write triangle: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
				return fmt.Errorf("stl: write attribute count: %w", err)
			}
		}
	}
	return nil
}
