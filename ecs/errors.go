package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrInitFailed is reported when a component's Init hook returns false.
	ErrInitFailed = errors.New("component init failed")
	// ErrDuplicateComponent is reported when an entity already holds a component of the same kind.
	ErrDuplicateComponent = errors.New("component kind already present on entity")
	// ErrComponentAttached is reported when a component value is already owned by an entity.
	ErrComponentAttached = errors.New("component already attached to an entity")
	// ErrNilComponent is reported when Add is given a nil component.
	ErrNilComponent = errors.New("nil component")
	// ErrNotPointer is reported when Add is given a component that is not a pointer.
	ErrNotPointer = errors.New("component kind must be a pointer type")
	// ErrComponentNotFound is reported by Get when the entity holds no component of the kind.
	ErrComponentNotFound = errors.New("component not found")

	// ErrReentrantTick is returned when the manager is driven from inside its own tick.
	ErrReentrantTick = errors.New("manager is already ticking")
	// ErrAlreadyAdmitted is returned when an entity is admitted to a manager twice.
	ErrAlreadyAdmitted = errors.New("entity already admitted")
	// ErrNilEntity is returned when a nil entity is admitted.
	ErrNilEntity = errors.New("nil entity")
	// ErrInvalidInterval is returned by Run for a non-positive tick interval.
	ErrInvalidInterval = errors.New("tick interval must be positive")
)

// ConstructionError reports why Add rejected a component.
type ConstructionError struct {
	Kind string
	ID   TypeID
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("add %s (type %d): %v", e.Kind, e.ID, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// LookupError reports a Get for a kind the entity does not hold.
type LookupError struct {
	Kind string
	ID   TypeID
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("get %s (type %d): %v", e.Kind, e.ID, ErrComponentNotFound)
}

func (e *LookupError) Unwrap() error {
	return ErrComponentNotFound
}
