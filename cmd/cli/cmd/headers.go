// Package cmd - headers command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pattern-catalog/core/catalog"
	"pattern-catalog/internal/config"
)

func newHeadersCmd() *cobra.Command {
	var (
		token       string
		contentType string
		body        string
		skipAuth    bool
	)

	headersCmd := &cobra.Command{
		Use:   "headers",
		Short: "Build request headers through the handler chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := config.Get().Headers
			if !cmd.Flags().Changed("token") {
				token = defaults.Token
			}
			if !cmd.Flags().Changed("content-type") {
				contentType = defaults.ContentType
			}
			if !cmd.Flags().Changed("body") {
				body = defaults.Body
			}

			headers, err := catalog.Headers(token, contentType, body, skipAuth)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), headers)
			return nil
		},
	}

	headersCmd.Flags().StringVar(&token, "token", "", "authorization token (default from config)")
	headersCmd.Flags().StringVar(&contentType, "content-type", "", "content type (default from config)")
	headersCmd.Flags().StringVar(&body, "body", "", "body line (default from config)")
	headersCmd.Flags().BoolVar(&skipAuth, "skip-auth", false, "start the chain after the authentication handler")
	return headersCmd
}
