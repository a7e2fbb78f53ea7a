// Package nextflow records and executes workflow engine invocations.
package nextflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/runstate"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// ExitError reports a non-zero exit from the engine process.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("nextflow exited with code %d", e.Code)
}

// Launcher persists and executes engine command lines.
type Launcher struct {
	store  runstate.Store
	runner CommandRunner
	logger *slog.Logger
}

// New creates a Launcher persisting through store.
func New(store runstate.Store, logger *slog.Logger) *Launcher {
	return &Launcher{
		store:  store,
		runner: &osCommandRunner{},
		logger: logger.With("component", "launcher"),
	}
}

func newLauncherWithRunner(store runstate.Store, runner CommandRunner, logger *slog.Logger) *Launcher {
	return &Launcher{store: store, runner: runner, logger: logger}
}

// Launch records command and then executes it as a blocking child process.
//
// A command that already ends with the resume indicator is recorded and NOT
// executed. Because Record guarantees the stored command ends with the
// indicator, Resume always lands in this branch: today a resume rewrites the
// record file and never reaches the engine.
// TODO: decide whether Resume should bypass this record-only branch and
// actually relaunch the engine; changing it changes long-standing behavior.
func (l *Launcher) Launch(ctx context.Context, command string) error {
	runID := "run_" + uuid.New().String()[:8]
	log := l.logger.With("run_id", runID)

	// Record before spawning so a failed run stays resumable.
	if err := l.store.Record(command); err != nil {
		return err
	}
	log.Debug("recorded resume command", "command", command)

	if strings.HasSuffix(command, runstate.ResumeFlag) {
		log.Info("command already carries the resume indicator; recorded without launching")
		return nil
	}

	tokens, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("split command: %w", err)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty command")
	}

	log.Info("launching nextflow", "command", command)
	if runErr := l.runner.Run(ctx, tokens[0], tokens[1:]...); runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("launch nextflow: %w", runErr)
	}

	log.Info("nextflow completed")
	return nil
}

// Resume reloads the recorded command and passes it back through Launch.
// Callers translate runstate.ErrNoPriorRun into user guidance.
func (l *Launcher) Resume(ctx context.Context) error {
	command, err := l.store.Load()
	if err != nil {
		return err
	}
	l.logger.Debug("loaded resume command", "command", command)
	return l.Launch(ctx, command)
}
