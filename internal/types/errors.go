// Package types provides type definitions for structured data used throughout the encounter-diversifier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "errors"

// ErrInvalidArgument is returned when a caller passes a value outside the
// contracted domain (unknown difficulty label, out-of-range level, bad option).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrKeyNotFound is returned when a lineup references an identifier that is
// absent from the cost table it is evaluated against.
var ErrKeyNotFound = errors.New("key not found")
