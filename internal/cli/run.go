package cli

import (
	"fmt"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/cmdline"
	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/nextflow"
	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/params"
	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/runstate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRunCmd() *cobra.Command {
	var paramsFile string
	var dryRun bool
	var profiles []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline.",
		Long: `Build a Nextflow invocation from the provided pipeline parameters,
record it for later resumption, and execute it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := collectParams(cmd.Flags(), profiles)
			if err != nil {
				return err
			}

			if paramsFile != "" {
				if err := params.LoadFile(paramsFile, set, logger); err != nil {
					return err
				}
			}

			// Not enforced through cobra so a params file can satisfy it.
			if !set.Has("refseq") {
				return fmt.Errorf("required parameter refseq not set (flag or params file)")
			}

			command, err := cmdline.NewBuilder(cfg.NextflowBin, cfg.PipelineDir).Build(set)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Println(command)
				fmt.Println("\nNo run launched. Use without --dry-run to execute.")
				return nil
			}

			launcher := nextflow.New(runstate.NewFileStore(cfg.WorkDir), logger)
			return launcher.Launch(cmd.Context(), command)
		},
	}

	for _, spec := range params.Registry() {
		addParamFlag(cmd.Flags(), spec, &profiles)
	}
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "YAML file of parameter defaults; explicit flags win")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the engine command without recording or running it")

	return cmd
}

// addParamFlag registers one schema parameter on the flag set.
func addParamFlag(flags *pflag.FlagSet, spec params.Spec, profiles *[]string) {
	switch spec.Kind {
	case params.KindString:
		flags.String(spec.Name, "", spec.Help)
	case params.KindInt:
		flags.Int(spec.Name, 0, spec.Help)
	case params.KindFloat:
		flags.Float64(spec.Name, 0, spec.Help)
	case params.KindBool:
		flags.Bool(spec.Name, false, spec.Help)
	case params.KindStringList:
		flags.Var(newProfileValue(spec, profiles), spec.Name, spec.Help)
	}
}

// collectParams builds the parameter set from flags the user actually set,
// so absent stays distinct from a typed zero value.
func collectParams(flags *pflag.FlagSet, profiles []string) (*params.Set, error) {
	set := params.NewSet()

	for _, spec := range params.Registry() {
		if !flags.Changed(spec.Name) {
			continue
		}

		var value any
		var err error
		switch spec.Kind {
		case params.KindString:
			value, err = flags.GetString(spec.Name)
		case params.KindInt:
			value, err = flags.GetInt(spec.Name)
		case params.KindFloat:
			value, err = flags.GetFloat64(spec.Name)
		case params.KindBool:
			value, err = flags.GetBool(spec.Name)
		case params.KindStringList:
			value = profiles
		}
		if err != nil {
			return nil, fmt.Errorf("read flag %s: %w", spec.Name, err)
		}

		if err := set.Put(spec.Name, value); err != nil {
			return nil, err
		}
	}

	return set, nil
}
