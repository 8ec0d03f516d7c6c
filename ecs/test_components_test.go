package ecs_test

import "github.com/plus3/compose/ecs"

// Common test component kinds
type Alpha struct {
	ecs.Base
	A, B    float64
	Updates int
}

func (c *Alpha) Update() {
	c.Updates++
	c.A++
	c.B += 2
}

// Beta reads another component on every update.
type Beta struct {
	ecs.Base
	A, B float64
	One  *Alpha
	Seen []float64
}

func (c *Beta) Update() {
	c.Seen = append(c.Seen, c.One.A)
	c.A--
	c.B -= 0.5
}

type Rejected struct {
	ecs.Base
}

func (c *Rejected) Init() bool { return false }

type Marker struct {
	ecs.Base
}

// Suicide kills its owner on the given update.
type Suicide struct {
	ecs.Base
	After   int
	Updates int
}

func (c *Suicide) Update() {
	c.Updates++
	if c.Updates >= c.After {
		c.Owner().Kill()
	}
}

// Tracked counts Destroy calls.
type Tracked struct {
	ecs.Base
	Destroyed int
}

func (c *Tracked) Destroy() { c.Destroyed++ }

// Remover removes Alpha from its owner when updated.
type Remover struct {
	ecs.Base
}

func (c *Remover) Update() {
	ecs.Remove[*Alpha](c.Owner())
}

// Adder attaches Next to its owner on its first update.
type Adder struct {
	ecs.Base
	Next *Alpha
}

func (c *Adder) Update() {
	if !ecs.Has[*Alpha](c.Owner()) {
		_, _ = ecs.Add(c.Owner(), c.Next)
	}
}

// Ticker calls back into its manager from inside an update.
type Ticker struct {
	ecs.Base
	Manager *ecs.Manager
	Err     error
}

func (c *Ticker) Update() {
	c.Err = c.Manager.Tick()
}

// Samples is a value kind: it satisfies Component through an embedded *Base
// and holds a slice, so its values are not comparable.
type Samples struct {
	*ecs.Base
	Values []float64
}
