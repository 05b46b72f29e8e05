/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package models

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema (Draft 2020-12) of a response model.
func Schema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return out, nil
}

// ResponseSchemas returns the schemas of both catalog responses keyed by model name.
func ResponseSchemas() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, 2)
	for name, v := range map[string]interface{}{
		"IndexCatalog":     &IndexCatalog{},
		"AttributeCatalog": &AttributeCatalog{},
	} {
		b, err := Schema(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = b
	}
	return out, nil
}
