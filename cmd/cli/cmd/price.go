// Package cmd - price command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pattern-catalog/adapters/hcl"
	"pattern-catalog/core/catalog"
	"pattern-catalog/core/composite"
	"pattern-catalog/internal/config"
	"pattern-catalog/internal/logging"
)

func newPriceCmd(opts *globalOptions) *cobra.Command {
	var breakdown bool

	priceCmd := &cobra.Command{
		Use:   "price <file.hcl>",
		Short: "Price a bill of materials",
		Long: `Load a bill of materials written in HCL and print its total.

Example file:
  name = "Desk"
  assembly "Cables" {
    equipment "HDMI" {
      price    = "9.99"
      quantity = 2
    }
  }`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := hcl.NewLoader().LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("loading bill of materials: %w", err)
			}
			items := composite.Count(doc.Root)
			logging.Info("loaded bill of materials",
				zap.String("path", args[0]),
				zap.Int("items", items),
			)
			if items == 0 {
				logging.Warn("bill of materials has no equipment", zap.String("path", args[0]))
			}

			if !cmd.Flags().Changed("breakdown") {
				breakdown = config.Get().Pricing.ShowBreakdown
			}

			w := newWriter(cmd.OutOrStdout(), opts)
			if breakdown {
				catalog.RenderPrices(w, doc.Root, doc.Currency)
				return nil
			}
			w.Println("%s %s", doc.Root.Price().String(), doc.Currency)
			return nil
		},
	}

	priceCmd.Flags().BoolVarP(&breakdown, "breakdown", "b", true, "print every item, not just the total")
	return priceCmd
}
