package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema []byte

// schemaNode is the subset of JSON schema used for required keys check
type schemaNode struct {
	Type       string                `json:"type"`
	Required   []string              `json:"required"`
	Properties map[string]schemaNode `json:"properties"`
}

// verifyRequired checks the parsed document against required keys of the embedded schema.
// Every missing key is reported, including the children of a missing section.
func verifyRequired(doc map[string]any) error {
	var root schemaNode
	if err := json.Unmarshal(embeddedSchema, &root); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	var errs *multierror.Error
	for _, missing := range missingKeys(root, doc, "") {
		errs = multierror.Append(errs, fmt.Errorf("missing '%s' in config file", missing))
	}
	return errs.ErrorOrNil()
}

// missingKeys walks required properties of the node, doc can be nil for missing sections
func missingKeys(node schemaNode, doc map[string]any, prefix string) []string {
	res := []string{}
	for _, key := range node.Required {
		path := key
		if prefix != "" {
			path = prefix + "/" + key
		}

		val, ok := doc[key]
		if !ok {
			res = append(res, path)
		}

		child, isObject := node.Properties[key]
		if !isObject || child.Type != "object" {
			continue
		}
		sub, _ := val.(map[string]any)
		res = append(res, missingKeys(child, sub, path)...)
	}
	return res
}

// GenerateSchema generates a JSON schema for the Config struct with nested sections inlined
func GenerateSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	return r.Reflect(&Config{})
}
