package cli

import "github.com/spf13/cobra"

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate provided inputs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNotYetSupported("validate")
		},
	}
}
