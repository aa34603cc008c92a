package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-dock/internal/boxengine"
)

func newCalcCmd() *cobra.Command {
	var (
		space float64
		specs []string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Distribute space among sizers",
		Long: `calc runs the box sizing engine on the given sizers and prints the
size each one receives. A non-zero unresolved value means the space was
below the sum of minimums (negative) or above the sum of maximums.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) == 0 {
				return errors.New("at least one --sizer is required")
			}
			sizers, err := parseSizers(specs)
			if err != nil {
				return err
			}

			unresolved := boxengine.Calc(sizers, space)

			p := newPrinter(cmd.OutOrStdout())
			p.title("calc")
			p.table(
				[]string{"index", "min", "max", "stretch", "size"},
				sizerRows(sizers, func(s boxengine.Sizer) float64 { return s.Size }),
			)
			p.field("unresolved", formatNum(unresolved))
			if unresolved != 0 {
				p.warn("space does not satisfy the sizer bounds")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&space, "space", 0, "space to distribute")
	cmd.Flags().StringArrayVar(&specs, "sizer", nil, "sizer as HINT[:MIN[:MAX[:STRETCH]]], repeatable")
	return cmd
}
