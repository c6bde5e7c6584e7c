// Package cmd provides the CLI commands for patterns.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pattern-catalog/core/ui"
	"pattern-catalog/internal/config"
	"pattern-catalog/internal/logging"
)

// Version is reported by the version command
const Version = "0.1.0"

// globalOptions holds persistent flag values shared by every subcommand
type globalOptions struct {
	cfgFile string
	verbose bool
	noColor bool
}

// NewRootCmd creates the top-level command with every subcommand attached
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Run the design pattern catalogue",
		Long: `patterns runs small demonstrations of classic design patterns.

Examples:
  patterns list
  patterns run composite chain-of-responsibility
  patterns price ./workstation.hcl
  patterns headers --skip-auth`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (json or yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newPriceCmd(opts))
	root.AddCommand(newHeadersCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

func initConfig(opts *globalOptions) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.noColor {
		cfg.Output.NoColor = true
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return nil
}

// newWriter builds the UI writer for a command from the active config
func newWriter(out io.Writer, opts *globalOptions) *ui.Writer {
	w := ui.NewWriter(out, config.Get().Output.NoColor)
	if opts.verbose {
		w.SetVerbosity(2)
	}
	return w
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "patterns version %s\n", Version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Get().Marshal(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	write := &cobra.Command{
		Use:   "write <path>",
		Short: "Write the effective configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Get().Save(args[0]); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	configCmd.AddCommand(show, write)
	return configCmd
}
