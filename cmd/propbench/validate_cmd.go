// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"encoding/json"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/dogaozden/propbench/internal/schema"
	"github.com/dogaozden/propbench/internal/theorem"
	"github.com/dogaozden/propbench/pkg/errutil"
	"github.com/dogaozden/propbench/pkg/propbench"
)

func newValidateCmd() *cobra.Command {
	var theoremPath, proofPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a structured proof against a theorem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, theoremPath, proofPath, jsonOut)
		},
	}

	cmd.Flags().StringVar(&theoremPath, "theorem", "", "path to a theorem JSON file (required)")
	cmd.Flags().StringVar(&proofPath, "proof", "", "path to a proof-lines JSON file (required)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the result as JSON")
	_ = cmd.MarkFlagRequired("theorem")
	_ = cmd.MarkFlagRequired("proof")

	return cmd
}

func runValidate(cmd *cobra.Command, theoremPath, proofPath string, jsonOut bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	callID := ulid.Make()
	logger := rootLogger().With("call_id", callID.String(), "op", "validate")

	req, err := loadValidateRequest(ctx, theoremPath, proofPath)
	if err != nil {
		errutil.LogError(logger, "failed to load validate request", err)
		return err
	}

	result, err := propbench.Validate(req.Theorem, req.Proof)
	if err != nil {
		errutil.LogError(logger, "validate failed", err)
		return err
	}
	logger.Info("validate complete", "valid", result.Valid, "line_count", result.LineCount)

	return printValidationResult(cmd, result, jsonOut)
}

func loadValidateRequest(ctx context.Context, theoremPath, proofPath string) (schema.ValidateRequest, error) {
	theoremRaw, err := readFileWithRetry(ctx, theoremPath)
	if err != nil {
		return schema.ValidateRequest{}, err
	}
	proofRaw, err := readFileWithRetry(ctx, proofPath)
	if err != nil {
		return schema.ValidateRequest{}, err
	}

	var th theorem.TheoremJSON
	if err := json.Unmarshal(theoremRaw, &th); err != nil {
		return schema.ValidateRequest{}, err
	}
	var proof []theorem.ProofLineJSON
	if err := json.Unmarshal(proofRaw, &proof); err != nil {
		return schema.ValidateRequest{}, err
	}

	combined := schema.ValidateRequest{Theorem: th, Proof: proof}
	combinedRaw, err := json.Marshal(combined)
	if err != nil {
		return schema.ValidateRequest{}, err
	}

	var req schema.ValidateRequest
	if err := schema.DecodeAndValidate(schema.Validate, combinedRaw, &req); err != nil {
		return schema.ValidateRequest{}, err
	}
	return req, nil
}

func printValidationResult(cmd *cobra.Command, result theorem.ValidationResultJSON, jsonOut bool) error {
	if jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Valid {
		cmd.Printf("VALID (%d lines)\n", result.LineCount)
		return nil
	}
	cmd.Printf("INVALID (%d lines)\n", result.LineCount)
	for _, e := range result.Errors {
		cmd.Printf("  - %s\n", e)
	}
	return nil
}
