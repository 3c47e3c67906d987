package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// defaultConfigName is loaded from the working directory when no --config
// flag is given.
const defaultConfigName = "gridcel.yaml"

// scanConfigPath pre-scans raw arguments for the --config flag, since the
// resolver it names must exist before kong parses the full command line.
// Falls back to gridcel.yaml in the working directory if present.
func scanConfigPath(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if path, ok := strings.CutPrefix(arg, "--config="); ok {
			return path
		}
	}
	if _, err := os.Stat(defaultConfigName); err == nil {
		return defaultConfigName
	}
	return ""
}

// yamlResolver loads a YAML mapping and serves its entries as flag
// defaults. Keys use underscores where flag names use dashes:
//
//	delimiter: ";"
//	marker: "="
//	header: false
//	fail_fast: true
//	log_level: info
func yamlResolver(path string) (kong.Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		key := strings.ReplaceAll(flag.Name, "-", "_")
		if value, ok := values[key]; ok {
			return value, nil
		}
		return nil, nil
	}), nil
}
