package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// corpusShapeSchema constrains the outer shape only; record fields stay free-form.
const corpusShapeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": { "type": "object" }
}`

var (
	shapeOnce   sync.Once
	shapeSchema *jsonschema.Schema
	shapeErr    error
)

func compiledShapeSchema() (*jsonschema.Schema, error) {
	shapeOnce.Do(func() {
		shapeSchema, shapeErr = jsonschema.CompileString("corpus-shape.json", corpusShapeSchema)
	})
	return shapeSchema, shapeErr
}

// ParseCorpus decodes corpus JSON, checks it against the corpus shape
// schema, and returns its records.
func ParseCorpus(data []byte) ([]Record, error) {
	var parsed JSONValue
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	schema, err := compiledShapeSchema()
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}
	if err := schema.Validate(parsed.ToInterface()); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return nil, fmt.Errorf("validate corpus: %w", err)
		}
		return nil, shapeError(parsed, verr)
	}
	return Records(parsed)
}

// shapeError maps the first failing instance of a schema violation onto an
// InputShapeError. Root violations get Index -1.
func shapeError(parsed JSONValue, verr *jsonschema.ValidationError) *InputShapeError {
	var leaf *jsonschema.ValidationError
	index := -1
	for _, candidate := range leaves(verr) {
		i := instanceIndex(candidate.InstanceLocation, len(parsed.Array))
		if leaf == nil || i < index {
			leaf, index = candidate, i
		}
	}
	if index < 0 {
		return &InputShapeError{
			Index:  -1,
			Got:    parsed.Kind,
			Reason: fmt.Sprintf("expected an array of records, got %s (schema %s)", parsed.Kind, leaf.KeywordLocation),
		}
	}
	got := parsed.Array[index].Kind
	return &InputShapeError{
		Index:  index,
		Got:    got,
		Reason: fmt.Sprintf("expected an object, got %s (schema %s)", got, leaf.KeywordLocation),
	}
}

func leaves(verr *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(verr.Causes) == 0 {
		return []*jsonschema.ValidationError{verr}
	}
	var out []*jsonschema.ValidationError
	for _, cause := range verr.Causes {
		out = append(out, leaves(cause)...)
	}
	return out
}

// instanceIndex reads the array index from a JSON pointer such as "/3". It
// returns -1 for the root or a pointer outside the array.
func instanceIndex(location string, length int) int {
	location = strings.TrimPrefix(location, "/")
	if location == "" {
		return -1
	}
	first, _, _ := strings.Cut(location, "/")
	i, err := strconv.Atoi(first)
	if err != nil || i < 0 || i >= length {
		return -1
	}
	return i
}

// LoadCorpus reads and parses a corpus file.
func LoadCorpus(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	records, err := ParseCorpus(data)
	if err != nil {
		var shapeErr *InputShapeError
		if errors.As(err, &shapeErr) {
			shapeErr.Path = path
			return nil, shapeErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
