// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package schema

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaIDBase = "https://propbench.invalid/schema"

// Kind names one of the two request shapes this package knows how to
// reflect and validate.
type Kind string

const (
	// Validate names ValidateRequest.
	Validate Kind = "validate"
	// ParseProof names ParseProofRequest.
	ParseProof Kind = "parse_proof"
)

// compiledState holds one kind's compiled schema and sync.Once for
// thread-safe lazy compilation.
type compiledState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

var (
	statesMu sync.Mutex
	states   = map[Kind]*compiledState{}
)

// Generate reflects the Go request struct for kind into a JSON Schema
// document.
func Generate(kind Kind) ([]byte, error) {
	r := jsonschema.Reflector{DoNotReference: true}

	var (
		reflected *jsonschema.Schema
		title     string
	)
	switch kind {
	case Validate:
		reflected = r.Reflect(&ValidateRequest{})
		title = "propbench validate request"
	case ParseProof:
		reflected = r.Reflect(&ParseProofRequest{})
		title = "propbench parse_proof request"
	default:
		return nil, oops.Code("UNKNOWN_SCHEMA_KIND").With("kind", kind).Errorf("unknown schema kind %q", kind)
	}

	reflected.ID = jsonschema.ID(schemaIDBase + "/" + string(kind) + ".json")
	reflected.Title = title

	data, err := json.MarshalIndent(reflected, "", "  ")
	if err != nil {
		return nil, oops.In("schema").With("kind", kind).Wrapf(err, "marshal reflected schema")
	}
	return append(data, '\n'), nil
}

// ValidateJSON checks data (parsed JSON, e.g. map[string]any or a typed
// request struct round-tripped through json.Marshal) against kind's
// compiled schema.
func ValidateJSON(kind Kind, data any) error {
	sch, err := compiled(kind)
	if err != nil {
		return oops.In("schema").With("kind", kind).Wrapf(err, "compile schema")
	}
	if err := sch.Validate(data); err != nil {
		return oops.Code("SCHEMA_VALIDATION_FAILED").With("kind", kind).Wrapf(err, "schema validation failed")
	}
	return nil
}

func compiled(kind Kind) (*jschema.Schema, error) {
	statesMu.Lock()
	st, ok := states[kind]
	if !ok {
		st = &compiledState{}
		states[kind] = st
	}
	statesMu.Unlock()

	st.once.Do(func() {
		st.schema, st.err = compile(kind)
	})
	return st.schema, st.err
}

func compile(kind Kind) (*jschema.Schema, error) {
	raw, err := Generate(kind)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, oops.In("schema").With("kind", kind).Wrapf(err, "parse generated schema JSON")
	}

	resourceName := string(kind) + ".json"
	c := jschema.NewCompiler()
	if err := c.AddResource(resourceName, doc); err != nil {
		return nil, oops.In("schema").With("kind", kind).Wrapf(err, "add schema resource")
	}
	sch, err := c.Compile(resourceName)
	if err != nil {
		return nil, oops.In("schema").With("kind", kind).Wrapf(err, "compile schema")
	}
	return sch, nil
}

// DecodeAndValidate unmarshals raw JSON into a generic value, validates
// it against kind's schema, then unmarshals it again into v.
func DecodeAndValidate(kind Kind, raw []byte, v any) error {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return oops.Code("MALFORMED_JSON").With("kind", kind).Wrapf(err, "parse input JSON")
	}
	if err := ValidateJSON(kind, generic); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return oops.Code("MALFORMED_JSON").With("kind", kind).Wrapf(err, "decode validated JSON")
	}
	return nil
}
