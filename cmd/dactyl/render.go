package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/fixtures"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/kernel"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/kernel/sdfx"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/tessellate"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <config>",
	Short: "Render the fixture geometry to a binary STL file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "case.stl", "output STL path")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	asm := fixtures.NewAssembly(cfg, frame.NewPlanar(cfg))

	positive, err := asm.Positive()
	if err != nil {
		return err
	}
	negative, err := asm.Negative()
	if err != nil {
		return err
	}
	solid := csg.DifferenceOf(positive, negative)

	k := sdfx.New()
	log.Infow("evaluating", "backend", "sdfx")
	evaluated, err := kernel.Evaluate(k, solid)
	if err != nil {
		return err
	}
	mesh, err := k.ToMesh(evaluated)
	if err != nil {
		return err
	}
	log.Infow("tessellated",
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
	)

	out, err := os.Create(renderOut)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := tessellate.WriteSTL(out, []*kernel.Mesh{mesh}); err != nil {
		return err
	}
	log.Infow("wrote STL", "path", renderOut)
	return nil
}
