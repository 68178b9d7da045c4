// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads CLI defaults from an optional propbench.yaml file,
// overridable by command-line flags. The core packages never import this
// package: configuration is a concern of the cmd/propbench boundary only.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds the settings every propbench subcommand reads.
type Config struct {
	// LogFormat is "json" or "text" (internal/logging.Setup).
	LogFormat string `koanf:"log_format"`
	// OutputFormat is "json" or "table". No subcommand reads it; each
	// chooses its rendering from its own --json flag.
	OutputFormat string `koanf:"output_format"`
	// MinCatalogVersion is a minimum rulecatalog.Version, empty meaning
	// unconstrained. No subcommand reads it; the catalog subcommand takes
	// its own --min-catalog-version flag.
	MinCatalogVersion string `koanf:"min_catalog_version"`
}

// Defaults returns the settings used when no file or flag overrides them.
func Defaults() Config {
	return Config{
		LogFormat:    "json",
		OutputFormat: "table",
	}
}

// Load builds a Config from, in increasing precedence: built-in
// defaults, an optional YAML file at path (skipped if it does not
// exist), and flags already registered on fs.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, oops.In("config").With("path", path).Wrapf(err, "load config file")
			}
		} else if !os.IsNotExist(err) {
			return Config{}, oops.In("config").With("path", path).Wrapf(err, "stat config file")
		}
	}

	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return Config{}, oops.In("config").Wrapf(err, "load flag overrides")
		}
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.In("config").Wrapf(err, "unmarshal merged config")
	}
	return cfg, nil
}
