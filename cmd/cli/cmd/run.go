// Package cmd - run command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pattern-catalog/core/catalog"
	"pattern-catalog/internal/logging"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [pattern...]",
		Short: "Run pattern demonstrations",
		Long: `Run one or more demonstrations by name, or all of them when no
name is given. Use "patterns list" to see the names.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return catalog.GetDefault().Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Debug("running demos", zap.Strings("names", args))
			return catalog.GetDefault().Run(newWriter(cmd.OutOrStdout(), opts), args...)
		},
	}
}
