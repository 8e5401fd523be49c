package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/valgebra"
	"github.com/hupe1980/valgebra/value"
)

// BlendResult is the output of the blend command.
type BlendResult struct {
	Kind      string  `json:"kind"`
	Requested string  `json:"requested"`
	Mode      string  `json:"mode"`
	Weight    float64 `json:"weight"`
	Result    string  `json:"result"`
}

// BlendOptions holds flags for the blend command.
type BlendOptions struct {
	*RootOptions
	Weight float64
}

// NewBlendCommand creates the blend command.
func NewBlendCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BlendOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "blend <kind> <mode> <a> <b>",
		Short: "Blend two values",
		Long: `Blend two values of one kind with a blend mode.

Modes the kind cannot support fall back to CopySource. With --verbose the
fallback is reported on stderr.

Example:
  valgebra blend Double Lerp 1 3 --weight 0.25
  valgebra blend Rotator Lerp "P=0 Y=170 R=0" "P=0 Y=-170 R=0" -w 0.5`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlend(opts, args, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Weight, "weight", "w", 1, "blend weight")

	return cmd
}

func runBlend(opts *BlendOptions, args []string, cmd *cobra.Command) error {
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	m, err := valgebra.ParseMode(args[1])
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid mode", err)
	}
	a, err := parseValue(k, args[2])
	if err != nil {
		return err
	}
	b, err := parseValue(k, args[3])
	if err != nil {
		return err
	}

	f := opts.formatter(cmd)
	op := opts.engine(cmd.ErrOrStderr()).Operator(k, m, false)
	if op.Mode() != m {
		f.VerboseLog("%s is not supported by %s, using %s", m, k, op.Mode())
	}

	out := value.New(k)
	op.Blend(a, b, opts.Weight, out)

	res := BlendResult{
		Kind:      k.String(),
		Requested: m.String(),
		Mode:      op.Mode().String(),
		Weight:    opts.Weight,
		Result:    value.Format(k, out),
	}
	return f.Success(res, func(w io.Writer) {
		fmt.Fprintln(w, res.Result)
	})
}
