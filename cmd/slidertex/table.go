package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wieku/danser-sliders/app/graphics/sliderrenderer"
)

func newTableCmd(flags *rootFlags) *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the cross-section colours at evenly spaced positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 2 {
				return fmt.Errorf("samples must be at least 2, got %d", samples)
			}

			style, cs, err := flags.loadStyle()
			if err != nil {
				return err
			}

			flags.log.WithFields(map[string]any{"style": style.Name, "samples": samples}).Debug("Sampling cross-section")

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Position", "R", "G", "B", "A", "Hex"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)

			for _, s := range sliderrenderer.Samples(cs, samples) {
				table.Append([]string{
					formatFloat(s.Position),
					formatFloat(s.Colour.R),
					formatFloat(s.Colour.G),
					formatFloat(s.Colour.B),
					formatFloat(s.Colour.A),
					s.Colour.Hex(),
				})
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 11, "Number of samples from edge to centre")

	return cmd
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 4, 32)
}
