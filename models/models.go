/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package models

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/niehs/gridsearch/errors"
)

// AttributeTypeString is the type of free-text searchable attributes.
const AttributeTypeString = "String"

// AttributeTypes lists the attribute types an index may declare.
var AttributeTypes = map[string]bool{
	AttributeTypeString: true,
}

// IndexDescriptor describes one search index served by this endpoint.
type IndexDescriptor struct {

	// Identifier of the index.
	// Required: true
	ID string `json:"id"`

	// Human readable name of the index.
	// Required: true
	Name string `json:"name"`

	// What the index contains.
	Info string `json:"info"`

	// Group maintaining the index.
	Maintainer string `json:"maintainer"`

	// Contact for questions about the index.
	// Format: email
	ContactEmail string `json:"contact_email"`
}

// Validate validates this index descriptor
func (m *IndexDescriptor) Validate(formats strfmt.Registry) error {
	if m.ID == "" {
		return errors.NewValidationError("id", "is required")
	}
	if m.Name == "" {
		return errors.NewValidationError("name", "is required")
	}
	if m.ContactEmail != "" && !formats.Validates("email", m.ContactEmail) {
		return errors.NewValidationError("contact_email", fmt.Sprintf("%q is not a valid email", m.ContactEmail))
	}
	return nil
}

// IndexCatalog is the root object returned when describing indexes.
type IndexCatalog struct {

	// Identifier of the index server.
	// Required: true
	ID string `json:"id"`

	// Name of the index server.
	Name string `json:"name"`

	// What the index server offers.
	Info string `json:"info"`

	// Ordered list of the indexes available.
	Attributes []IndexDescriptor `json:"attributes"`
}

// Validate validates this index catalog and every descriptor in it
func (m *IndexCatalog) Validate(formats strfmt.Registry) error {
	if m.ID == "" {
		return errors.NewValidationError("id", "is required")
	}
	seen := make(map[string]bool, len(m.Attributes))
	for i := range m.Attributes {
		if err := m.Attributes[i].Validate(formats); err != nil {
			return fmt.Errorf("attributes[%d]: %w", i, err)
		}
		if seen[m.Attributes[i].ID] {
			return errors.NewValidationError(fmt.Sprintf("attributes[%d].id", i), fmt.Sprintf("duplicate index id %q", m.Attributes[i].ID))
		}
		seen[m.Attributes[i].ID] = true
	}
	return nil
}

// Clone returns a deep copy of the catalog.
func (m *IndexCatalog) Clone() *IndexCatalog {
	out := *m
	if m.Attributes != nil {
		out.Attributes = append([]IndexDescriptor(nil), m.Attributes...)
	}
	return &out
}

// AttributeDescriptor describes one searchable attribute of an index.
type AttributeDescriptor struct {

	// Attribute name.
	// Required: true
	AttribName string `json:"attrib_name"`

	// Attribute type.
	// Required: true
	// Enum: [String]
	AttribType string `json:"attrib_type"`

	// What the attribute holds.
	Info string `json:"info"`

	// Shortcut usable in query text.
	ShortcutText string `json:"shortcut_text"`
}

// Validate validates this attribute descriptor
func (m *AttributeDescriptor) Validate(formats strfmt.Registry) error {
	if m.AttribName == "" {
		return errors.NewValidationError("attrib_name", "is required")
	}
	if !AttributeTypes[m.AttribType] {
		return errors.NewValidationError("attrib_type", fmt.Sprintf("unsupported attribute type %q", m.AttribType))
	}
	return nil
}

// AttributeCatalog lists the searchable attributes of a named index.
type AttributeCatalog struct {

	// Identifier of the attribute catalog.
	// Required: true
	ID string `json:"id"`

	// What the catalog covers.
	Info string `json:"info"`

	// Index name the catalog was requested for.
	Name string `json:"name"`

	// Ordered list of attributes.
	Attributes []AttributeDescriptor `json:"attributes"`
}

// Validate validates this attribute catalog and every attribute in it
func (m *AttributeCatalog) Validate(formats strfmt.Registry) error {
	if m.ID == "" {
		return errors.NewValidationError("id", "is required")
	}
	for i := range m.Attributes {
		if err := m.Attributes[i].Validate(formats); err != nil {
			return fmt.Errorf("attributes[%d]: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep copy of the catalog.
func (m *AttributeCatalog) Clone() *AttributeCatalog {
	out := *m
	if m.Attributes != nil {
		out.Attributes = append([]AttributeDescriptor(nil), m.Attributes...)
	}
	return &out
}
