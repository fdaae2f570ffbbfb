// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the store, the query pipeline and the mutation
// lifecycle. Match them with errors.Is.
var (
	// ErrNotFound is returned for an unknown identifier on update or delete.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a primary key or unique index value is taken.
	ErrConflict = errors.New("unique constraint conflict")

	// ErrValidation is returned when a record fails required-field or format checks.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFilter is returned for unrecognized sort fields or orders.
	ErrInvalidFilter = errors.New("invalid filter")
)

// ValidationError describes which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidFilterError describes a rejected query parameter.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %s=%q", e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidFilter.
func (e *InvalidFilterError) Unwrap() error {
	return ErrInvalidFilter
}

// NotFound wraps ErrNotFound with the record kind and id.
func NotFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
