package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rarity errors
	ErrMsgUnknownRarity = "unknown item rarity"

	// Entity errors
	ErrMsgNilEntity = "entity reference is nil"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownRarity = errors.New(ErrMsgUnknownRarity)
	ErrNilEntity     = errors.New(ErrMsgNilEntity)
)
