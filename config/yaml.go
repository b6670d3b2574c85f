// Package config loads YAML configuration files for the kong CLI.
//
// Keys are flag names, written with dashes or underscores. A key nested
// under a command name only applies to that command and wins over a
// top-level key:
//
//	ffprobe: /usr/local/bin/ffprobe
//	sort:
//	  mode: orientation
//	  collision: rename
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched in order; missing files are ignored
func DefaultPaths() []string {
	return []string{
		"./videosorter.yaml",
		"~/.config/videosorter/config.yaml",
	}
}

// YAML is a kong.ConfigurationLoader for YAML files
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding YAML config: %w", err)
	}

	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(section, flag.Name); ok {
					return toFlagValue(v), nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return toFlagValue(v), nil
		}
		return nil, nil
	}), nil
}

func lookup(values map[string]any, name string) (any, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		v, ok := values[key]
		if !ok {
			continue
		}
		// a nested map is a command section, not a value
		if _, isSection := v.(map[string]any); isSection {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

func toFlagValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
