// Package validation checks JSON documents against the schemas embedded in the binary.
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var embedded embed.FS

// Embedded schema names
const (
	PaytableSchema = "schemas/paytable.schema.json"
)

// SchemaValidator validates JSON data against a named schema
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator over the embedded schemas
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

var (
	defaultValidator     SchemaValidator
	defaultValidatorOnce sync.Once
)

// Default returns a shared validator
func Default() SchemaValidator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewSchemaValidator()
	})
	return defaultValidator
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadData, dataPath, err)
	}
	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data against a schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.load(schemaName)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, schemaName, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseData, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// load compiles a schema once and caches it
func (v *validator) load(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := embedded.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseSchema, err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return nil, err
	}

	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, err
	}
	v.schemas[name] = schema
	return schema, nil
}

// ErrSchemaValidation is wrapped by every schema mismatch
var ErrSchemaValidation = errors.New("schema validation failed")

func formatValidationError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	var lines []string
	collectErrors(verr, &lines)
	return fmt.Errorf("%w:\n%s", ErrSchemaValidation, strings.Join(lines, "\n"))
}

// collectErrors walks the cause tree, keeping leaf failures only
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
