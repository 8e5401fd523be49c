package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/valgebra/recipe"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// RunID fixes the run ID instead of generating a UUIDv7.
	RunID string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <recipe.yaml>",
		Short: "Run a blend recipe",
		Long: `Run the jobs of a YAML blend recipe in order and print every job's values.

Example:
  valgebra run ./recipes/smoothing.yaml
  valgebra run ./recipes/smoothing.yaml --format json --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecipe(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "fixed run ID (default: generated)")

	return cmd
}

func runRecipe(opts *RunOptions, path string, cmd *cobra.Command) error {
	rec, err := recipe.LoadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load recipe", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runOpts []recipe.RunOption
	if opts.RunID != "" {
		runOpts = append(runOpts, recipe.WithRunID(func() string { return opts.RunID }))
	}

	f := opts.formatter(cmd)
	f.VerboseLog("running recipe %s (%d jobs)", rec.Name, len(rec.Jobs))

	res, err := rec.Run(ctx, opts.engine(cmd.ErrOrStderr()), runOpts...)
	if err != nil {
		return WrapExitError(ExitFailure, "recipe failed", err)
	}

	return f.Success(res, func(w io.Writer) {
		fmt.Fprintf(w, "run %s (%s)\n", res.RunID, res.Name)
		for _, j := range res.Jobs {
			fmt.Fprintf(w, "%s [%s/%s]\n", j.Name, j.Kind, j.Mode)
			for _, v := range j.Values {
				fmt.Fprintf(w, "  %s\n", v)
			}
		}
	})
}
