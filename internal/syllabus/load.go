package syllabus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed syllabus.json
var defaultSyllabus []byte

//go:embed syllabus_schema.json
var syllabusSchema []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func init() {
	tr, err := parse(defaultSyllabus)
	if err != nil {
		panic(fmt.Sprintf("embedded syllabus invalid: %v", err))
	}
	t = tr
}

// LoadFile replaces the curriculum with the syllabus at path.
// The file is schema-validated before any structural checks run.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read syllabus: %w", err)
	}
	tr, err := parse(data)
	if err != nil {
		return err
	}
	t = tr
	return nil
}

// parse validates raw syllabus JSON and builds the tree.
func parse(data []byte) (*tree, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse syllabus JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("syllabus schema validation failed: %w", err)
	}

	var s Syllabus
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode syllabus: %w", err)
	}
	if err := validateSyllabus(s); err != nil {
		return nil, err
	}

	return buildTree(s), nil
}

// getCompiledSchema compiles the embedded syllabus schema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(syllabusSchema, &parsed); err != nil {
			compileErr = fmt.Errorf("parse syllabus schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://syllabus.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
