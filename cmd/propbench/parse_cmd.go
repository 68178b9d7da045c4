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

func newParseCmd() *cobra.Command {
	var theoremPath, textPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse freeform proof text into structured lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParse(cmd, theoremPath, textPath, jsonOut)
		},
	}

	cmd.Flags().StringVar(&theoremPath, "theorem", "", "path to a theorem JSON file (required)")
	cmd.Flags().StringVar(&textPath, "text", "", "path to the freeform proof text file (required)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the result as JSON")
	_ = cmd.MarkFlagRequired("theorem")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func runParse(cmd *cobra.Command, theoremPath, textPath string, jsonOut bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	callID := ulid.Make()
	logger := rootLogger().With("call_id", callID.String(), "op", "parse_proof")

	req, err := loadParseRequest(ctx, theoremPath, textPath)
	if err != nil {
		errutil.LogError(logger, "failed to load parse request", err)
		return err
	}

	result, err := propbench.ParseProof(req.Text, req.Theorem)
	if err != nil {
		errutil.LogError(logger, "parse_proof failed", err)
		return err
	}
	logger.Info("parse_proof complete", "lines", len(result.Lines), "errors", len(result.Errors))

	return printParseResult(cmd, result, jsonOut)
}

func loadParseRequest(ctx context.Context, theoremPath, textPath string) (schema.ParseProofRequest, error) {
	theoremRaw, err := readFileWithRetry(ctx, theoremPath)
	if err != nil {
		return schema.ParseProofRequest{}, err
	}
	textRaw, err := readFileWithRetry(ctx, textPath)
	if err != nil {
		return schema.ParseProofRequest{}, err
	}

	var th theorem.TheoremJSON
	if err := json.Unmarshal(theoremRaw, &th); err != nil {
		return schema.ParseProofRequest{}, err
	}

	combined := schema.ParseProofRequest{Text: string(textRaw), Theorem: th}
	combinedRaw, err := json.Marshal(combined)
	if err != nil {
		return schema.ParseProofRequest{}, err
	}

	var req schema.ParseProofRequest
	if err := schema.DecodeAndValidate(schema.ParseProof, combinedRaw, &req); err != nil {
		return schema.ParseProofRequest{}, err
	}
	return req, nil
}

func printParseResult(cmd *cobra.Command, result theorem.ParseResultJSON, jsonOut bool) error {
	if jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	for _, l := range result.Lines {
		cmd.Printf("%d. %s  [%s]  (depth %d)\n", l.LineNumber, l.Formula, l.Justification, l.Depth)
	}
	for _, e := range result.Errors {
		if e.LineNumber != nil {
			cmd.Printf("error (line %d): %s: %q\n", *e.LineNumber, e.Message, e.Raw)
		} else {
			cmd.Printf("error: %s: %q\n", e.Message, e.Raw)
		}
	}
	return nil
}
