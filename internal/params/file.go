package params

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML mapping of parameter names to values and stores each
// value into set, skipping parameters that already have a value so explicit
// flags win over file contents. Keys that do not name a known parameter are
// logged and ignored.
func LoadFile(path string, set *Set, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read params file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse params file: %w", err)
	}

	for _, name := range sortedKeys(raw) {
		spec, ok := Lookup(name)
		if !ok {
			logger.Warn("ignoring unknown parameter in params file", "name", name)
			continue
		}
		if set.Has(name) {
			logger.Debug("params file value shadowed by flag", "name", name)
			continue
		}

		value, err := coerce(spec, raw[name])
		if err != nil {
			return fmt.Errorf("params file: %w", err)
		}
		if err := set.Put(name, value); err != nil {
			return fmt.Errorf("params file: %w", err)
		}
	}

	return nil
}

// coerce converts a decoded YAML value into the Go type the parameter's kind
// requires. YAML integers are accepted for float parameters, and a bare
// string is accepted for the list parameter.
func coerce(spec Spec, v any) (any, error) {
	switch spec.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("parameter %s: expected string, got %T", spec.Name, v)
		}
		return s, nil

	case KindInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		}
		return nil, fmt.Errorf("parameter %s: expected integer, got %T", spec.Name, v)

	case KindFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
		return nil, fmt.Errorf("parameter %s: expected number, got %T", spec.Name, v)

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("parameter %s: expected bool, got %T", spec.Name, v)
		}
		return b, nil

	case KindStringList:
		switch list := v.(type) {
		case string:
			return []string{list}, nil
		case []any:
			items := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("parameter %s: expected string items, got %T", spec.Name, item)
				}
				items = append(items, s)
			}
			return items, nil
		}
		return nil, fmt.Errorf("parameter %s: expected string or list, got %T", spec.Name, v)
	}

	return nil, fmt.Errorf("parameter %s: unhandled kind", spec.Name)
}

// sortedKeys returns the sorted keys of a map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
