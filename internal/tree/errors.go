package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrEmptyID         = errors.New("record id is empty")
	ErrDuplicateID     = errors.New("duplicate record id")
	ErrOrphanReference = errors.New("parent record not found")
	ErrCyclicReference = errors.New("cyclic parent reference")
)

// EmptyIDError reports a record without an id. Such a record could never be
// referenced as a parent, and its children would turn into roots after a
// Flatten round trip.
type EmptyIDError struct {
	// Index is the position of the record in the input slice.
	Index int
}

func (e *EmptyIDError) Error() string {
	return fmt.Sprintf("record at index %d has an empty id", e.Index)
}

func (e *EmptyIDError) Is(target error) bool { return target == ErrEmptyID }

// DuplicateIDError reports two input records sharing an id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate record id %q", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// OrphanReferenceError reports a record whose parent is absent from the input
// while the Reject orphan policy is active.
type OrphanReferenceError struct {
	ID       string
	ParentID string
}

func (e *OrphanReferenceError) Error() string {
	return fmt.Sprintf("record %q references missing parent %q", e.ID, e.ParentID)
}

func (e *OrphanReferenceError) Is(target error) bool { return target == ErrOrphanReference }

// CyclicReferenceError reports records that are their own ancestors.
type CyclicReferenceError struct {
	// IDs lists the cycle members in ancestry order: each id's parent is the
	// next id, and the last id's parent is the first.
	IDs []string
}

func (e *CyclicReferenceError) Error() string {
	if len(e.IDs) == 0 {
		return ErrCyclicReference.Error()
	}
	loop := append(append([]string{}, e.IDs...), e.IDs[0])
	return fmt.Sprintf("cycle detected in parent references: %s", strings.Join(loop, " -> "))
}

func (e *CyclicReferenceError) Is(target error) bool { return target == ErrCyclicReference }
