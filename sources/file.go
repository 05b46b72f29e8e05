/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package sources

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-openapi/strfmt"
	"github.com/niehs/gridsearch/errors"
	"github.com/niehs/gridsearch/models"
	"gopkg.in/yaml.v3"
)

// Definition is one attribute catalog declared in a catalog file.
type Definition struct {
	Key     string
	Catalog models.AttributeCatalog
}

type fileAttribute struct {
	AttribName   string `yaml:"attrib_name"`
	AttribType   string `yaml:"attrib_type"`
	Info         string `yaml:"info"`
	ShortcutText string `yaml:"shortcut_text"`
}

type fileCatalog struct {
	Key        string          `yaml:"key"`
	ID         string          `yaml:"id"`
	Info       string          `yaml:"info"`
	Attributes []fileAttribute `yaml:"attributes"`
}

type catalogFile struct {
	Catalogs []fileCatalog `yaml:"catalogs"`
}

// LoadFile reads attribute catalog definitions from a YAML file.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file %s: %w", path, err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes and validates catalog definitions. Unknown fields and duplicate keys are rejected.
func Parse(data []byte) ([]Definition, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("cannot parse catalogs: %w", err)
	}

	defs := make([]Definition, 0, len(file.Catalogs))
	seen := make(map[string]bool, len(file.Catalogs))
	for i, fc := range file.Catalogs {
		if fc.Key == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("catalogs[%d].key", i), "is required")
		}
		if seen[fc.Key] {
			return nil, errors.NewValidationError(fmt.Sprintf("catalogs[%d].key", i), fmt.Sprintf("duplicate key %q", fc.Key))
		}
		seen[fc.Key] = true

		catalog := models.AttributeCatalog{
			ID:         fc.ID,
			Info:       fc.Info,
			Attributes: make([]models.AttributeDescriptor, 0, len(fc.Attributes)),
		}
		for _, fa := range fc.Attributes {
			catalog.Attributes = append(catalog.Attributes, models.AttributeDescriptor{
				AttribName:   fa.AttribName,
				AttribType:   fa.AttribType,
				Info:         fa.Info,
				ShortcutText: fa.ShortcutText,
			})
		}
		if err := catalog.Validate(strfmt.Default); err != nil {
			return nil, fmt.Errorf("catalog %q: %w", fc.Key, err)
		}
		defs = append(defs, Definition{Key: fc.Key, Catalog: catalog})
	}
	return defs, nil
}
