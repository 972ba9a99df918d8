package ixstore

import "fmt"

// StructuralError reports that a stored key disagreed with its schema at
// runtime — spec.md §7 calls this out explicitly as "a bug in the
// implementation itself ... not a user error". It is always raised by a
// panic, and only ever before any state mutation for the operation in
// progress, so a StructuralError can never leave a Store half-mutated
// (spec.md §4.6, "Failure semantics").
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("ixstore: structural invariant violated: %s", e.Msg)
}
