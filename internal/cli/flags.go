package cli

import (
	"fmt"
	"strings"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/params"
)

// profileValue is a pflag.Value accepting repeated or comma-separated
// profile names, each validated against the schema's choices at parse time.
type profileValue struct {
	spec    params.Spec
	items   *[]string
	changed bool
}

func newProfileValue(spec params.Spec, p *[]string) *profileValue {
	return &profileValue{spec: spec, items: p}
}

func (v *profileValue) Set(raw string) error {
	parts := strings.Split(raw, ",")
	for _, p := range parts {
		if !v.spec.Allows(p) {
			return fmt.Errorf("invalid profile %q: must be one of %s",
				p, strings.Join(v.spec.Choices, ", "))
		}
	}
	if !v.changed {
		*v.items = parts
		v.changed = true
		return nil
	}
	*v.items = append(*v.items, parts...)
	return nil
}

func (v *profileValue) Type() string {
	return "profile"
}

func (v *profileValue) String() string {
	if v.items == nil {
		return ""
	}
	return strings.Join(*v.items, ",")
}
