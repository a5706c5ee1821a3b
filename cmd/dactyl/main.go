// Command dactyl builds keyboard-case fixture geometry from a
// configuration file and renders it to STL.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeremy-asher/dactyl-keyboard/pkg/param"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dactyl",
	Short: "Parametric keyboard-case fixture generator",
	Long: `dactyl places the fixtures of a parametric keyboard case (MCU bay,
back plate, LED strip, connection socket, foot plates, USB bay) from a
YAML or script configuration and renders them to STL.`,
	SilenceUsage: true,
}

// newLogger builds the process logger. Verbose mode switches to the
// human-readable development encoder with debug enabled.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig reads a configuration by file extension: .lisp and .zy are
// evaluated as scripts, everything else parses as YAML.
func loadConfig(path string) (*param.Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lisp", ".zy":
		return param.LoadScript(path)
	default:
		return param.Load(path)
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
