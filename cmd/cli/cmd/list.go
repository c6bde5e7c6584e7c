// Package cmd - list command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pattern-catalog/core/catalog"
	"pattern-catalog/core/ui"
	"pattern-catalog/internal/config"
	"pattern-catalog/internal/errors"
)

func newListCmd() *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the patterns in the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = config.Get().Output.DefaultFormat
			}
			demos := catalog.GetDefault().All()
			out := cmd.OutOrStdout()

			switch format {
			case "text", "":
				table := ui.NewWriter(out, config.Get().Output.NoColor).NewTable("NAME", "CATEGORY", "SUMMARY")
				for _, d := range demos {
					table.AddRow(d.Name, string(d.Category), d.Summary)
				}
				table.Render()
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(demos)
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(demos)
			default:
				return fmt.Errorf("list: %w", errors.Unsupported("format "+format))
			}
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	return listCmd
}
