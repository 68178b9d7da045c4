// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dogaozden/propbench/internal/config"
	"github.com/dogaozden/propbench/internal/logging"
)

// Global flags available to all subcommands.
var (
	configFile string
	logFormat  string
)

// NewRootCmd creates the root command for the propbench CLI. Config
// loading happens in PersistentPreRunE, after cobra has parsed flags,
// so --config/--log-format are visible by the time it runs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propbench",
		Short: "propbench - validate natural-deduction proofs of propositional tautologies",
		Long: `propbench checks natural-deduction proofs (Fitch style) of propositional
tautologies against a fixed rule catalog, and turns freeform LLM proof text
into the structured lines that check expects.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			format := logFormat
			if format == "" {
				format = cfg.LogFormat
			}
			logging.SetDefault("propbench", version, format)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (propbench.yaml)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log output format: json or text")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}

func rootLogger() *slog.Logger { return slog.Default() }
