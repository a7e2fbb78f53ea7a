package cli

import (
	"errors"
	"fmt"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/logging"
	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/nextflow"
	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/runstate"
	"github.com/spf13/cobra"
)

func newResumeCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume the previous run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// resume carries its own verbosity scale instead of the root
			// log flags.
			log := logging.NewLogger(logging.LevelFromVerbosity(verbose), flagLogFormat)
			launcher := nextflow.New(runstate.NewFileStore(cfg.WorkDir), log)

			err := launcher.Resume(cmd.Context())
			if errors.Is(err, runstate.ErrNoPriorRun) {
				return fmt.Errorf("%w: make sure you start with `oneroof run` before switching to `oneroof resume`", err)
			}
			return err
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "Increase verbosity level (-v for WARNING, -vv for INFO, -vvv for DEBUG)")

	return cmd
}
