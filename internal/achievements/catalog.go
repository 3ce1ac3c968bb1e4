package achievements

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.json
var defaultCatalog []byte

//go:embed catalog_schema.json
var catalogSchema []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// ErrMalformedRequirement indicates a definition whose requirement object
// carries no recognizable field for its category. Rejected at catalog load,
// before the engine ever evaluates it.
type ErrMalformedRequirement struct {
	Key      string
	Category Category
}

func (e *ErrMalformedRequirement) Error() string {
	return fmt.Sprintf("achievement %q: requirement has no recognizable field for category %q", e.Key, e.Category)
}

// Catalog is the fixed set of achievement definitions.
type Catalog struct {
	defs  []Definition
	byKey map[string]*Definition
}

// DefaultCatalog loads the embedded catalog. Panics only if the embedded
// data is invalid, which is a build defect.
func DefaultCatalog() *Catalog {
	c, err := parseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded achievement catalog invalid: %v", err))
	}
	return c
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(data)
}

// All returns every definition in catalog order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Get returns a definition by key.
func (c *Catalog) Get(key string) (Definition, bool) {
	d, ok := c.byKey[key]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{defs: defs, byKey: make(map[string]*Definition, len(defs))}
	for i := range c.defs {
		d := &c.defs[i]
		if _, dup := c.byKey[d.Key]; dup {
			return nil, fmt.Errorf("duplicate achievement key: %q", d.Key)
		}
		if !recognizable(d) {
			return nil, &ErrMalformedRequirement{Key: d.Key, Category: d.Category}
		}
		c.byKey[d.Key] = d
	}
	return c, nil
}

// recognizable reports whether the requirement carries at least one field
// the definition's category knows how to evaluate.
func recognizable(d *Definition) bool {
	r := d.Requirement
	switch d.Category {
	case CategoryStreak:
		return r.Days != nil
	case CategoryAccuracy:
		return (r.Score != nil && r.Count != nil) || r.AvgScore != nil
	case CategoryCompletion:
		return r.Topics != nil
	case CategorySocial:
		return r.Friends != nil
	default:
		return false
	}
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(catalogSchema, &parsed); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://achievements.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
