// Package cmdline serializes a resolved parameter set into the single
// command-line string handed to the workflow engine.
package cmdline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/params"
	"github.com/kballard/go-shellquote"
)

// Builder constructs engine command lines from parameter sets.
type Builder struct {
	engine   string
	pipeline string
}

// NewBuilder creates a builder invoking the given engine binary against the
// given pipeline directory.
func NewBuilder(engine, pipeline string) *Builder {
	return &Builder{engine: engine, pipeline: pipeline}
}

// Header returns the fixed invocation prefix, e.g. "nextflow run .".
func (b *Builder) Header() string {
	return b.engine + " run " + b.pipeline
}

// Build serializes set into a command-line string: the fixed header followed
// by one fragment per present parameter, in schema order. Boolean parameters
// emit their bare flag when true and nothing when false, so an explicit
// false is indistinguishable from an absent flag in the output. All other
// values are shell-escaped so whitespace and metacharacters survive the
// shell-style split applied at spawn time.
func (b *Builder) Build(set *params.Set) (string, error) {
	parts := []string{b.Header()}
	var buildErr error

	set.Walk(func(spec params.Spec, value any, present bool) {
		if !present || buildErr != nil {
			return
		}
		if spec.Kind == params.KindBool {
			if v, _ := value.(bool); v {
				parts = append(parts, "--"+spec.Name)
			}
			return
		}
		token, err := formatValue(spec, value)
		if err != nil {
			buildErr = err
			return
		}
		parts = append(parts, "--"+spec.Name+" "+shellquote.Join(token))
	})

	if buildErr != nil {
		return "", buildErr
	}
	return strings.Join(parts, " "), nil
}

// formatValue renders a non-boolean parameter value as a single token.
// Lists join with commas, the engine's convention for stacked profiles.
func formatValue(spec params.Spec, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []string:
		return strings.Join(v, ","), nil
	}
	return "", fmt.Errorf("parameter %s: unsupported value type %T", spec.Name, value)
}
