package ecs

import (
	"iter"
	"reflect"
	"sync/atomic"

	"github.com/kamstrup/intmap"
	"github.com/plus3/compose/geom"
)

var nextEntityID atomic.Uint64

// Entity owns at most one component per kind.
type Entity struct {
	id         uint64
	alive      bool
	admitted   bool
	updating   bool
	components *intmap.Map[TypeID, Component]
	scratch    []Component
}

// NewEntity creates a live entity carrying a default Transform.
func NewEntity() *Entity {
	return newEntity(NewTransform())
}

// NewEntityAt creates a live entity whose Transform is set to the given placement.
func NewEntityAt(pos geom.Vec3, rot geom.Quat, scale geom.Vec3) *Entity {
	return newEntity(&Transform{Position: pos, Rotation: rot, Scale: scale})
}

func newEntity(t *Transform) *Entity {
	e := &Entity{
		id:         nextEntityID.Add(1),
		alive:      true,
		components: intmap.New[TypeID, Component](8),
	}
	if _, err := Add(e, t); err != nil {
		panic("attach transform: " + err.Error())
	}
	return e
}

// ID returns a process-unique number for the entity, for diagnostics.
func (e *Entity) ID() uint64 {
	return e.id
}

// IsAlive reports whether the entity has not been killed.
func (e *Entity) IsAlive() bool {
	return e.alive
}

// Kill marks the entity dead. Its components stay in place until the
// manager reaps it.
func (e *Entity) Kill() {
	e.alive = false
}

// Transform returns the entity's placement component, or nil if it was removed.
func (e *Entity) Transform() *Transform {
	t, err := Get[*Transform](e)
	if err != nil {
		return nil
	}
	return t
}

// Len returns the number of components on the entity.
func (e *Entity) Len() int {
	return e.components.Len()
}

// Components iterates over the entity's components in storage order.
// The table must not be modified during iteration.
func (e *Entity) Components() iter.Seq2[TypeID, Component] {
	return e.components.All()
}

// Update calls Update on every component present when the pass starts.
// Components removed during the pass are skipped, and the pass stops once
// the entity is killed. Cross-component order is unspecified. A nested call
// from inside a component's Update does nothing.
func (e *Entity) Update() {
	if e.updating {
		return
	}
	e.updating = true
	defer func() { e.updating = false }()

	e.scratch = e.scratch[:0]
	for _, c := range e.components.All() {
		e.scratch = append(e.scratch, c)
	}

	for i, c := range e.scratch {
		e.scratch[i] = nil
		if !e.alive {
			continue
		}
		if cur, ok := e.components.Get(c.TypeID()); !ok || cur != c {
			continue
		}
		c.Update()
	}
}

// Destroy removes every component from the entity, calling Destroy on
// those that implement Destroyer.
func (e *Entity) Destroy() {
	var owned []Component
	for _, c := range e.components.All() {
		owned = append(owned, c)
	}
	e.components.Clear()

	for _, c := range owned {
		if d, ok := c.(Destroyer); ok {
			d.Destroy()
		}
	}
}

// Add attaches c to e under the kind of c and returns it.
// Add fails with a *ConstructionError when c is not a pointer, when e already
// holds that kind, when c is already attached elsewhere, or when c.Init
// returns false.
func Add[K Component](e *Entity, c K) (K, error) {
	if isNil(c) {
		id := TypeOf[K]()
		return c, &ConstructionError{Kind: TypeName(id), ID: id, Err: ErrNilComponent}
	}

	id := TypeIDOf(c)
	if reflect.ValueOf(c).Kind() != reflect.Pointer {
		return c, &ConstructionError{Kind: TypeName(id), ID: id, Err: ErrNotPointer}
	}
	if e.components.Has(id) {
		return c, &ConstructionError{Kind: TypeName(id), ID: id, Err: ErrDuplicateComponent}
	}
	if c.attached() {
		return c, &ConstructionError{Kind: TypeName(id), ID: id, Err: ErrComponentAttached}
	}
	if !c.Init() {
		return c, &ConstructionError{Kind: TypeName(id), ID: id, Err: ErrInitFailed}
	}

	c.attach(id, e)
	e.components.Put(id, c)
	return c, nil
}

// Get returns e's component of kind K, or a *LookupError if there is none.
func Get[K Component](e *Entity) (K, error) {
	id := TypeOf[K]()

	c, ok := e.components.Get(id)
	if !ok {
		var zero K
		return zero, &LookupError{Kind: TypeName(id), ID: id}
	}
	return c.(K), nil
}

// Remove detaches and destroys e's component of kind K. It is a no-op if
// e holds none.
func Remove[K Component](e *Entity) {
	id := TypeOf[K]()

	c, ok := e.components.Get(id)
	if !ok {
		return
	}
	e.components.Del(id)

	if d, ok := c.(Destroyer); ok {
		d.Destroy()
	}
}

// Has reports whether e holds a component of kind K.
func Has[K Component](e *Entity) bool {
	return e.components.Has(TypeOf[K]())
}

// Has2 reports whether e holds components of both kinds.
func Has2[A, B Component](e *Entity) bool {
	return Has[A](e) && Has[B](e)
}

// Has3 reports whether e holds components of all three kinds.
func Has3[A, B, C Component](e *Entity) bool {
	return Has[A](e) && Has[B](e) && Has[C](e)
}

// HasAll reports whether e holds a component for every id, stopping at the
// first missing one.
func HasAll(e *Entity, ids ...TypeID) bool {
	for _, id := range ids {
		if !e.components.Has(id) {
			return false
		}
	}
	return true
}

func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
