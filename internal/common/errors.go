// Package common defines sentinel errors shared by the diary packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Record errors (the stored value exists but cannot be decoded).
	ErrorCorruptRecord = errors.New("corrupt record")

	// Key errors.
	ErrorInvalidKey = errors.New("invalid diary key")
)
