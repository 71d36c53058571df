package finbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID is the opaque unique identifier of a record. Users never type a full ID:
// lookups go through an unambiguous prefix of at least MinIDPrefix characters.
type ID string

// MinIDPrefix is the minimum prefix length accepted when resolving a record
// by ID. Eight characters is also what list views display.
const MinIDPrefix = 8

// NewID returns a fresh random identifier.
func NewID() ID { return ID(uuid.NewString()) }

// Short returns the display form of the identifier, its first 8 characters.
func (id ID) Short() string {
	if len(id) <= MinIDPrefix {
		return string(id)
	}
	return string(id[:MinIDPrefix])
}

// HasPrefix reports whether the identifier starts with the given prefix.
func (id ID) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(id), prefix)
}

// Lookup failure conditions.
var (
	ErrNotFound    = errors.New("no record matches")
	ErrAmbiguousID = errors.New("multiple records match")
)

// checkPrefix validates a user-supplied ID prefix before any matching.
func checkPrefix(prefix string) error {
	if len(prefix) < MinIDPrefix {
		return fmt.Errorf("id prefix %q is too short: at least %d characters are required", prefix, MinIDPrefix)
	}
	return nil
}
