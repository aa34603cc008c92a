package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-dock/internal/boxengine"
)

func newAdjustCmd() *cobra.Command {
	var (
		index int
		delta float64
		specs []string
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Drag the handle after a sizer",
		Long: `adjust lays the sizers out in the sum of their hints, then moves the
handle after --index by --delta and prints the resulting hints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) == 0 {
				return errors.New("at least one --sizer is required")
			}
			sizers, err := parseSizers(specs)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(sizers) {
				return fmt.Errorf("index %d out of range for %d sizers", index, len(sizers))
			}

			var total float64
			for _, s := range sizers {
				total += s.SizeHint
			}
			boxengine.Calc(sizers, total)
			boxengine.Adjust(sizers, index, delta)

			p := newPrinter(cmd.OutOrStdout())
			p.title("adjust")
			p.table(
				[]string{"index", "min", "max", "stretch", "hint"},
				sizerRows(sizers, func(s boxengine.Sizer) float64 { return s.SizeHint }),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "sizer before the dragged handle")
	cmd.Flags().Float64Var(&delta, "delta", 0, "distance to drag the handle")
	cmd.Flags().StringArrayVar(&specs, "sizer", nil, "sizer as HINT[:MIN[:MAX[:STRETCH]]], repeatable")
	return cmd
}
