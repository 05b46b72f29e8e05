/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrIndexNotFound is returned when an attribute lookup names an index outside the supported set
	ErrIndexNotFound = errors.New("Error: Index not found")

	// ErrNotFound is returned when a datastore has no record for a key
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyRegistered is returned when a registry key is registered twice
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrRegistrySealed is returned when registering into a sealed registry
	ErrRegistrySealed = errors.New("registry is sealed")

	// ErrInvalidInput is returned when a catalog definition fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptRecord is returned when a stored record no longer validates
	ErrCorruptRecord = errors.New("corrupt record")
)

// UnknownIndexError is returned by attribute lookups for an unrecognized index name.
type UnknownIndexError struct {
	Name string
}

func (e *UnknownIndexError) Error() string {
	return fmt.Sprintf("%s: %q", ErrIndexNotFound.Error(), e.Name)
}

func (e *UnknownIndexError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// NotFoundError represents a missing datastore record
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyRegisteredError represents a duplicate registration
type AlreadyRegisteredError struct {
	Kind string
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.Name)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// CorruptRecordError represents a stored record that fails validation.
// It does not match ErrInvalidInput: the fault lies with the store, not the caller.
type CorruptRecordError struct {
	Key    string
	Reason string
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("stored record %q is corrupt: %s", e.Key, e.Reason)
}

func (e *CorruptRecordError) Is(target error) bool {
	return target == ErrCorruptRecord
}

// Helper functions for creating errors

// NewUnknownIndexError creates a new UnknownIndexError
func NewUnknownIndexError(name string) error {
	return &UnknownIndexError{Name: name}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(recordType, key string) error {
	return &NotFoundError{Type: recordType, Key: key}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(kind, name string) error {
	return &AlreadyRegisteredError{Kind: kind, Name: name}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCorruptRecordError creates a new CorruptRecordError from the validation failure cause
func NewCorruptRecordError(key string, cause error) error {
	return &CorruptRecordError{Key: key, Reason: cause.Error()}
}

// IsUnknownIndex checks if an error is an unknown index error
func IsUnknownIndex(err error) bool {
	return errors.Is(err, ErrIndexNotFound)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyRegistered checks if an error is a duplicate registration error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCorruptRecord checks if an error is a corrupt stored record error
func IsCorruptRecord(err error) bool {
	return errors.Is(err, ErrCorruptRecord)
}
