package ecs

import "weak"

// Component is a unit of behavior or data owned by an Entity.
// Component kinds are pointer types that embed Base, e.g.
//
//	type Health struct {
//		ecs.Base
//		Current int
//	}
//
// Base supplies the identity fields and default hooks, so a kind only
// overrides Init or Update when it needs to.
type Component interface {
	// Init completes construction. Returning false rejects the component.
	Init() bool
	// Update runs once per tick while the component and its entity are alive.
	Update()
	// TypeID returns the id of the component's kind once attached.
	TypeID() TypeID
	// Owner returns the entity the component is attached to, or nil.
	Owner() *Entity

	attach(id TypeID, owner *Entity) bool
	attached() bool
}

// Destroyer is implemented by components that release resources when they
// are removed from their entity or their entity is destroyed.
type Destroyer interface {
	Destroy()
}

// Base is embedded by every component kind.
type Base struct {
	id    TypeID
	owner weak.Pointer[Entity]
	bound bool
}

// Init accepts the component.
func (b *Base) Init() bool { return true }

// Update does nothing.
func (b *Base) Update() {}

// TypeID returns the kind id assigned when the component was added.
func (b *Base) TypeID() TypeID { return b.id }

// Owner returns the owning entity. The reference is weak: holding a component
// never keeps its entity alive.
func (b *Base) Owner() *Entity {
	if !b.bound {
		return nil
	}
	return b.owner.Value()
}

// attach records id and owner. It succeeds only once per component.
func (b *Base) attach(id TypeID, owner *Entity) bool {
	if b.bound {
		return false
	}
	b.id = id
	b.owner = weak.Make(owner)
	b.bound = true
	return true
}

func (b *Base) attached() bool { return b.bound }
