package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/morikuni/failure/v2"
	jsv "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "config.schema.json"

// Schema reflects the JSON Schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous: true,
	}
	return r.Reflect(&Config{})
}

// SchemaJSON returns the indented JSON Schema of Config.
func SchemaJSON() ([]byte, error) {
	b, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, failure.Wrap(err)
	}
	return b, nil
}

// Check validates a raw YAML config document more strictly than Load:
// the document must match the JSON Schema and provider names must be unique.
func Check(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return failure.Translate(err, ErrParse,
			failure.Message(fmt.Sprintf("Cannot parse config file: %v", err)),
		)
	}

	if err := validateSchema(doc); err != nil {
		return failure.Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return failure.Wrap(err)
	}

	if err := validate.Var(cfg.Providers, "unique=Name"); err != nil {
		return failure.Translate(err, ErrInvalid,
			failure.Message("Provider names must be unique"),
		)
	}
	return nil
}

func validateSchema(doc any) error {
	schemaJSON, err := SchemaJSON()
	if err != nil {
		return failure.Wrap(err)
	}

	// Round-trip through JSON so numbers and maps have the shapes the validator expects.
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return failure.Translate(err, ErrParse,
			failure.Message(fmt.Sprintf("Cannot convert config document: %v", err)),
		)
	}

	schemaDoc, err := jsv.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return failure.Wrap(err)
	}
	c := jsv.NewCompiler()
	if err := c.AddResource(schemaURL, schemaDoc); err != nil {
		return failure.Wrap(err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return failure.Wrap(err)
	}

	inst, err := jsv.UnmarshalJSON(bytes.NewReader(docJSON))
	if err != nil {
		return failure.Wrap(err)
	}
	if err := schema.Validate(inst); err != nil {
		return failure.Translate(err, ErrInvalid,
			failure.Message(fmt.Sprintf("Config does not match schema: %v", err)),
		)
	}
	return nil
}
