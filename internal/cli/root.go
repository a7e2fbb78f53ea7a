package cli

import (
	"fmt"
	"log/slog"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/config"
	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	cfg    config.Config
)

// NewRootCmd creates the root cobra command for the oneroof CLI.
func NewRootCmd() *cobra.Command {
	cfg = config.Default()

	root := &cobra.Command{
		Use:   "oneroof",
		Short: "oneroof — launcher for the OneRoof sequencing pipeline",
		Long: "oneroof translates pipeline flags into a single Nextflow invocation,\n" +
			"records that invocation for later resumption, and runs it.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error) (or ONEROOF_LOG_LEVEL env)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", cfg.LogFormat, "Log format (text, json) (or ONEROOF_LOG_FORMAT env)")

	root.AddCommand(
		newEnvCmd(),
		newValidateCmd(),
		newResumeCmd(),
		newRunCmd(),
	)

	return root
}

// errNotYetSupported marks subcommands that parse but have no behavior yet.
func errNotYetSupported(name string) error {
	return fmt.Errorf("the %s subcommand is not yet supported but will be soon", name)
}
