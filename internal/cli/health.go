package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
