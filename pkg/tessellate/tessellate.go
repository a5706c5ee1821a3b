// Package tessellate lowers assembly pieces to triangle meshes using a
// geometry kernel. One mesh is produced per piece.
package tessellate

import (
	"fmt"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/fixtures"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/kernel"
)

// Tessellate evaluates every piece on the provided geometry kernel and
// returns one named mesh per piece. The tessellator is read-only and never
// mutates the pieces. Pieces whose mesh comes out empty are kept, so the
// output slice always lines up with the input.
func Tessellate(pieces []fixtures.Piece, k kernel.Kernel) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, 0, len(pieces))
	for _, p := range pieces {
		mesh, err := tessellatePiece(p, k)
		if err != nil {
			return nil, fmt.Errorf("tessellate: piece %s: %w", p.Name, err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// tessellatePiece evaluates one piece and tags the mesh with the piece's
// name and outermost color.
func tessellatePiece(p fixtures.Piece, k kernel.Kernel) (*kernel.Mesh, error) {
	solid, err := kernel.Evaluate(k, p.Shape)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, err
	}
	mesh.PartName = p.Name
	mesh.Color = outerColor(p.Shape)
	return mesh, nil
}

// outerColor returns the first color tag on the path from the root down
// through single-child wrappers, or "" when the piece is untagged.
func outerColor(s csg.Shape) string {
	for {
		switch n := s.(type) {
		case csg.Color:
			return n.Name
		case csg.Translate:
			s = n.Shape
		case csg.Rotate:
			s = n.Shape
		default:
			return ""
		}
	}
}
