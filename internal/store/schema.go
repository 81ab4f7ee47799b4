package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/storage.schema.json
var storageSchema string

const storageSchemaURL = "https://taskbook.local/storage.schema.json"

// Problem is a single schema violation inside a storage file.
type Problem struct {
	Path    string
	Message string
}

// ValidationError reports every schema violation found in one file.
type ValidationError struct {
	File     string
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return fmt.Sprintf("%s: invalid", e.File)
	}
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, fmt.Sprintf("%s: %s", p.Path, p.Message))
	}
	return fmt.Sprintf("%s: %s", e.File, strings.Join(msgs, "; "))
}

// Validator checks storage documents against the embedded item schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded storage schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(storageSchemaURL, strings.NewReader(storageSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(storageSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks raw file contents. name is used in the returned error.
func (v *Validator) Validate(name string, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return &ValidationError{
			File:     name,
			Problems: []Problem{{Path: "$", Message: err.Error()}},
		}
	}

	if err := v.schema.Validate(doc); err != nil {
		verr := &ValidationError{File: name}
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("validating %s: %w", name, err)
		}
		collectProblems(verr, ve)
		return verr
	}
	return nil
}

func collectProblems(result *ValidationError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Problems = append(result.Problems, Problem{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectProblems(result, cause)
	}
}

// pointerToPath turns "/3/boards" into "$.3.boards".
func pointerToPath(ptr string) string {
	if ptr == "" {
		return "$"
	}
	return "$" + strings.ReplaceAll(ptr, "/", ".")
}
