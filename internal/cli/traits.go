package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/valgebra/value"
)

// TraitsRow is one kind of the traits table.
type TraitsRow struct {
	Kind               string  `json:"kind"`
	Size               uintptr `json:"size"`
	Components         int     `json:"components"`
	SupportsLerp       bool    `json:"lerp"`
	SupportsMinMax     bool    `json:"minmax"`
	SupportsArithmetic bool    `json:"arithmetic"`
}

// NewTraitsCommand creates the traits command.
func NewTraitsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "traits",
		Short: "Print the traits of every value kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]TraitsRow, 0, value.NumKinds)
			for _, k := range value.Kinds() {
				t := value.TraitsOf(k)
				rows = append(rows, TraitsRow{
					Kind:               k.String(),
					Size:               t.Size,
					Components:         t.Components,
					SupportsLerp:       t.SupportsLerp,
					SupportsMinMax:     t.SupportsMinMax,
					SupportsArithmetic: t.SupportsArithmetic,
				})
			}
			return rootOpts.formatter(cmd).Success(rows, func(w io.Writer) {
				for _, r := range rows {
					fmt.Fprintf(w, "%s size=%d components=%d lerp=%t minmax=%t arithmetic=%t\n",
						r.Kind, r.Size, r.Components, r.SupportsLerp, r.SupportsMinMax, r.SupportsArithmetic)
				}
			})
		},
	}
}
