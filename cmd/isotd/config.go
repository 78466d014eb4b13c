package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isotd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default demo configuration. Save it to
~/.isotd/configs/demo.yaml or ./configs/demo.yaml to customize the demo.

Examples:
  isotd config > ~/.isotd/configs/demo.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
