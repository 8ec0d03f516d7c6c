package ecs

import (
	"reflect"
	"sync"
)

// TypeID identifies a component kind. Ids are handed out from a single
// process-wide counter the first time a kind is seen and are never reused.
// They are not stable across processes.
type TypeID uint32

type typeTable struct {
	mu    sync.Mutex
	ids   map[reflect.Type]TypeID
	names []string
}

var types = &typeTable{
	ids: make(map[reflect.Type]TypeID),
}

func (t *typeTable) lookup(typ reflect.Type) TypeID {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.ids[typ]; ok {
		return id
	}

	id := TypeID(len(t.names))
	t.ids[typ] = id
	t.names = append(t.names, typ.String())
	return id
}

// TypeOf returns the TypeID of the component kind K, allocating one on first use.
func TypeOf[K any]() TypeID {
	return types.lookup(reflect.TypeFor[K]())
}

// TypeIDOf returns the TypeID for the dynamic type of c.
func TypeIDOf(c Component) TypeID {
	return types.lookup(reflect.TypeOf(c))
}

// TypeName returns the Go type name registered under id, or "" if id was never allocated.
func TypeName(id TypeID) string {
	types.mu.Lock()
	defer types.mu.Unlock()

	if int(id) >= len(types.names) {
		return ""
	}
	return types.names[id]
}
