// Package errors provides error handling for the DrugAge query core.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to callers (e.g. how to fix a bad vocabulary file)
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := buildTable(); err != nil {
//	    return errors.Wrap(err, "failed to build drug table")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrAmbiguousAlias) {
//	    // handle data-authoring error
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for the synonym tables and vocabulary loading.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrAmbiguousAlias indicates an alias is attached to more than one
	// canonical identifier. This is a data-authoring error and fails
	// table construction.
	ErrAmbiguousAlias = New("ambiguous alias")

	// ErrEmptyAliasSet indicates a canonical identifier has no aliases
	ErrEmptyAliasSet = New("canonical identifier has no aliases")

	// ErrVocabularyNotFound indicates a vocabulary file could not be read
	ErrVocabularyNotFound = New("vocabulary not found")

	// ErrInvalidVocabulary indicates a vocabulary file failed to parse
	ErrInvalidVocabulary = New("invalid vocabulary")
)

// IsAmbiguousAliasError checks if an error is or wraps ErrAmbiguousAlias
func IsAmbiguousAliasError(err error) bool {
	return err != nil && Is(err, ErrAmbiguousAlias)
}

// IsVocabularyError checks if an error relates to vocabulary loading or
// validation. Useful for callers that want a single "bad table data" branch.
func IsVocabularyError(err error) bool {
	return err != nil && IsAny(err, ErrAmbiguousAlias, ErrEmptyAliasSet, ErrVocabularyNotFound, ErrInvalidVocabulary)
}

// NewAmbiguousAliasError creates an ambiguous-alias error naming the alias
// and both canonical identifiers that claim it.
func NewAmbiguousAliasError(alias, first, second string) error {
	err := Wrap(ErrAmbiguousAlias, Newf("alias %q maps to both %q and %q", alias, first, second).Error())
	return WithHint(err, "each alias may resolve to exactly one canonical identifier; fix the vocabulary data")
}
