package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/csg"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/fixtures"
	"github.com/jeremy-asher/dactyl-keyboard/pkg/frame"
)

var checkCmd = &cobra.Command{
	Use:   "check <config>",
	Short: "Resolve a configuration and validate the fixture geometry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	pieces, err := fixtures.NewAssembly(cfg, frame.NewPlanar(cfg)).Pieces()
	if err != nil {
		return err
	}

	bad := 0
	for _, p := range pieces {
		b := csg.BoundingBox(p.Shape)
		log.Debugw("piece",
			"name", p.Name,
			"negative", p.Negative,
			"min", b.Min,
			"max", b.Max,
		)
		for _, degErr := range csg.Validate(p.Shape) {
			log.Errorw("degenerate geometry", "piece", p.Name, "detail", degErr.Error())
			bad++
		}
	}

	if bad > 0 {
		return fmt.Errorf("check: %d degenerate node(s) across %d piece(s)", bad, len(pieces))
	}
	log.Infow("configuration valid", "pieces", len(pieces))
	return nil
}
