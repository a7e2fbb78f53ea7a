// Package runstate persists the most recent engine invocation so an
// interrupted or failed run can be resumed with the same parameters.
package runstate

import (
	"errors"
	"strings"
)

// RecordFile is the fixed name of the resume record within the store's
// directory.
const RecordFile = ".nfresume"

// ResumeFlag is the engine flag that continues a prior run from the engine's
// own checkpoints. Record guarantees every stored command ends with it.
const ResumeFlag = "-resume"

// ErrNoPriorRun reports that a resume was requested before any run had
// recorded a command.
var ErrNoPriorRun = errors.New("previous run not detected")

// Store is a single-slot record of the last command issued. Record always
// overwrites, so at most one command is retained at a time.
type Store interface {
	// Record stores command, first appending ResumeFlag when the command
	// does not already end with it.
	Record(command string) error

	// Load returns the recorded command, or ErrNoPriorRun when nothing has
	// been recorded.
	Load() (string, error)
}

func withResume(command string) string {
	if strings.HasSuffix(command, ResumeFlag) {
		return command
	}
	return command + " " + ResumeFlag
}
