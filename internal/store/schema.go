package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://tusk.invalid/task_data.schema.json"

//go:embed task_data.schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()

	err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	return compiler.Compile(schemaURL)
})

// validate checks that data is well-formed JSON matching the data file
// schema. The returned error names the first offending locations.
func validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any

	unmarshalErr := json.Unmarshal(data, &doc)
	if unmarshalErr != nil {
		return fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	validateErr := schema.Validate(doc)
	if validateErr == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(validateErr, &ve) {
		return validateErr
	}

	var problems []string

	collectSchemaErrors(ve, &problems)

	return fmt.Errorf("schema: %s", strings.Join(problems, "; "))
}

func collectSchemaErrors(ve *jsonschema.ValidationError, problems *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}

		*problems = append(*problems, fmt.Sprintf("at %s: %s", loc, ve.Message))

		return
	}

	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, problems)
	}
}
