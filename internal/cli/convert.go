package cli

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/hupe1980/valgebra"
	"github.com/hupe1980/valgebra/value"
)

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <from-kind> <to-kind> <value>",
		Short: "Convert a value between kinds",
		Long: `Convert a value written in the text format of one kind into another kind.

Example:
  valgebra convert Vector Rotator "X=10 Y=20 Z=30"
  valgebra convert Double Bool 0.5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseKind(args[0])
			if err != nil {
				return err
			}
			to, err := parseKind(args[1])
			if err != nil {
				return err
			}
			src, err := parseValue(from, args[2])
			if err != nil {
				return err
			}

			dst := value.New(to)
			rootOpts.engine(cmd.ErrOrStderr()).Convert(from, src, to, dst)

			res := ConvertResult{From: from.String(), To: to.String(), Input: args[2], Output: value.Format(to, dst)}
			return rootOpts.formatter(cmd).Success(res, func(w io.Writer) {
				fmt.Fprintln(w, res.Output)
			})
		},
	}
}

func parseKind(name string) (value.Kind, error) {
	k, err := valgebra.ParseKind(name)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid kind", err)
	}
	return k, nil
}

func parseValue(k value.Kind, text string) (unsafe.Pointer, error) {
	p := value.New(k)
	if !value.Parse(k, text, p) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("%q is not a valid %s", text, k))
	}
	return p, nil
}
