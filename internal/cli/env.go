package cli

import "github.com/spf13/cobra"

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Check that all dependencies are available in the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNotYetSupported("env")
		},
	}
}
