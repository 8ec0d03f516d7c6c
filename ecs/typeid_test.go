package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/compose/ecs"
)

func TestTypeOf(t *testing.T) {
	t.Run("stable per kind", func(t *testing.T) {
		first := ecs.TypeOf[*Alpha]()
		for range 10 {
			assert.Equal(t, first, ecs.TypeOf[*Alpha]())
		}
	})

	t.Run("distinct kinds get distinct ids", func(t *testing.T) {
		ids := map[ecs.TypeID]string{}
		for name, id := range map[string]ecs.TypeID{
			"alpha":     ecs.TypeOf[*Alpha](),
			"beta":      ecs.TypeOf[*Beta](),
			"marker":    ecs.TypeOf[*Marker](),
			"transform": ecs.TypeOf[*ecs.Transform](),
		} {
			prev, dup := ids[id]
			assert.False(t, dup, "%s shares id %d with %s", name, id, prev)
			ids[id] = name
		}
	})

	t.Run("value and kind agree", func(t *testing.T) {
		assert.Equal(t, ecs.TypeOf[*Marker](), ecs.TypeIDOf(&Marker{}))
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "*ecs_test.Alpha", ecs.TypeName(ecs.TypeOf[*Alpha]()))
		assert.Equal(t, "", ecs.TypeName(ecs.TypeID(1<<31)))
	})
}
