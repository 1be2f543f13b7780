package objectberry

import (
	"errors"
	"fmt"

	"github.com/blockberries/objectberry/types"
)

// NotFoundError reports that an ObjectSource has no object for the
// requested id (or id/version pair).
//
// Absence is a normal outcome at this boundary — versions are sparse
// Lamport counters — so it gets its own type rather than being folded
// into transport failures.
type NotFoundError struct {
	Id types.ObjectId
	// Version is nil when the latest version was requested.
	Version *types.Version
}

func (e *NotFoundError) Error() string {
	if e.Version != nil {
		return fmt.Sprintf("object %s not found at version %d", e.Id, *e.Version)
	}
	return fmt.Sprintf("object %s not found", e.Id)
}

// NewNotFoundError creates a NotFoundError for the latest version of id.
func NewNotFoundError(id types.ObjectId) *NotFoundError {
	return &NotFoundError{Id: id}
}

// NewNotFoundAtError creates a NotFoundError for a specific version of id.
func NewNotFoundAtError(id types.ObjectId, version types.Version) *NotFoundError {
	return &NotFoundError{Id: id, Version: &version}
}

// IsNotFound checks whether an error is a NotFoundError and returns it.
func IsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
