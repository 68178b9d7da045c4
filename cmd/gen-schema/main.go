// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Command gen-schema writes the JSON Schema documents for propbench's two
// request shapes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dogaozden/propbench/internal/schema"
)

var kinds = map[schema.Kind]string{
	schema.Validate:   "validate.schema.json",
	schema.ParseProof: "parse_proof.schema.json",
}

func main() {
	outDir := "schemas"
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	for kind, filename := range kinds {
		data, err := schema.Generate(kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s schema: %v\n", kind, err)
			os.Exit(1)
		}

		outPath := filepath.Join(outDir, filename)
		if err := os.WriteFile(outPath, data, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s\n", outPath)
	}
}
