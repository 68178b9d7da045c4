// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/dogaozden/propbench/internal/rulecatalog"
)

// newCatalogCmd reports the compiled-in rule catalog's version, and can
// fail a CI gate if it drops below a minimum the caller expects.
func newCatalogCmd() *cobra.Command {
	var minVersion string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the rule catalog version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, minVersion)
		},
	}

	cmd.Flags().StringVar(&minVersion, "min-catalog-version", "", "fail if the catalog version is below this semver")
	return cmd
}

func runCatalog(cmd *cobra.Command, minVersion string) error {
	cmd.Println(rulecatalog.Version.String())
	if minVersion == "" {
		return nil
	}
	want, err := semver.NewVersion(minVersion)
	if err != nil {
		return err
	}
	if rulecatalog.Version.LessThan(want) {
		return &catalogTooOldError{have: rulecatalog.Version.String(), want: minVersion}
	}
	return nil
}

type catalogTooOldError struct {
	have, want string
}

func (e *catalogTooOldError) Error() string {
	return "rule catalog " + e.have + " is older than required minimum " + e.want
}
