package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/valgebra/selector"
	"github.com/hupe1980/valgebra/value"
)

// SelectResult is the output of the select command.
type SelectResult struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	SubKind string `json:"subkind"`
	Value   string `json:"value,omitempty"`
}

// SelectOptions holds flags for the select command.
type SelectOptions struct {
	*RootOptions
	Kind string
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "select <path> [value]",
		Short: "Resolve an attribute path and read a sub-value",
		Long: `Resolve an attribute path into its kind and sub-selection. When a value
is given, print the sub-value the path addresses in it.

Built-in properties ($Position, $Rotation, ...) have their own kind; other
attributes take the kind given with --kind.

Example:
  valgebra select '$Transform.Scale.Z' "0,0,0|0,0,0|1,2,3"
  valgebra select Offset.Length "X=3 Y=4 Z=0" --kind Vector`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "Double", "kind of non-property attributes")

	return cmd
}

func runSelect(opts *SelectOptions, args []string, cmd *cobra.Command) error {
	attrKind, err := parseKind(opts.Kind)
	if err != nil {
		return err
	}
	p, err := selector.Parse(args[0])
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid path", err)
	}

	k := p.Kind(attrKind)
	sub := p.SubKind(attrKind)
	res := SelectResult{Path: p.String(), Kind: k.String(), SubKind: sub.String()}

	if len(args) == 2 {
		src, err := parseValue(k, args[1])
		if err != nil {
			return err
		}
		dst := value.New(sub)
		p.Selection.Get(k, src, sub, dst)
		res.Value = value.Format(sub, dst)
	}

	return opts.formatter(cmd).Success(res, func(w io.Writer) {
		fmt.Fprintf(w, "path: %s\nkind: %s\nsubkind: %s\n", res.Path, res.Kind, res.SubKind)
		if len(args) == 2 {
			fmt.Fprintf(w, "value: %s\n", res.Value)
		}
	})
}
