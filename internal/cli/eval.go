package cli

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/program"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <program.yaml>",
		Short: "Evaluate an array program",
		Long: `Load a YAML array program, run its steps and print the requested arrays.

Example:
  arrnd eval examples/dot.yaml
  arrnd eval --format json --verbose examples/dot.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, rootOpts, args[0])
		},
	}
}

func runEval(cmd *cobra.Command, opts *RootOptions, path string) error {
	log := newLogger(cmd, opts.Verbose).With("run", uuid.NewString())

	log.Debug("loading program", "path", path)
	p, err := program.LoadFile(path)
	if err != nil {
		log.Error("load failed", "path", path, "error", err)
		return err
	}
	log.Debug("program loaded", "arrays", len(p.Arrays), "steps", len(p.Steps))

	start := time.Now()
	results, err := p.Run()
	if err != nil {
		log.Error("run failed", "error", err)
		return err
	}
	log.Debug("program finished", "results", len(results), "elapsed", time.Since(start))

	if opts.Format == "json" {
		return program.WriteJSON(cmd.OutOrStdout(), results)
	}
	return program.WriteText(cmd.OutOrStdout(), results)
}
