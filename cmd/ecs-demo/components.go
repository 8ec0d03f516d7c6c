package main

import (
	"github.com/plus3/compose/ecs"
	"go.uber.org/zap"
)

// Alpha counts upward on every update.
type Alpha struct {
	ecs.Base
	A, B float64
	log  *zap.Logger
}

func NewAlpha(log *zap.Logger, a, b float64) *Alpha {
	return &Alpha{A: a, B: b, log: log}
}

func (c *Alpha) Update() {
	c.Print()
	c.A++
	c.B += 2
}

func (c *Alpha) Print() {
	c.log.Info("alpha", zap.Float64("a", c.A), zap.Float64("b", c.B))
}

// Beta counts downward and reports the Alpha it follows. A Beta built
// without an Alpha owns a private one that is never attached to an entity.
type Beta struct {
	ecs.Base
	A, B float64
	one  *Alpha
	log  *zap.Logger
}

func NewBeta(log *zap.Logger, a, b float64, one *Alpha) *Beta {
	if one == nil {
		one = NewAlpha(log, 999, 999)
	}
	return &Beta{A: a, B: b, one: one, log: log}
}

func (c *Beta) Init() bool {
	return c.one != nil
}

func (c *Beta) Update() {
	c.log.Info("beta", zap.Float64("a", c.A), zap.Float64("b", c.B))
	c.one.Print()
	c.A--
	c.B -= 0.5
}

func (c *Beta) Destroy() {
	c.one = nil
}

// Lifetime kills its owner after a fixed number of updates.
type Lifetime struct {
	ecs.Base
	Remaining int
}

func (c *Lifetime) Init() bool {
	return c.Remaining > 0
}

func (c *Lifetime) Update() {
	c.Remaining--
	if c.Remaining <= 0 {
		if owner := c.Owner(); owner != nil {
			owner.Kill()
		}
	}
}

// Drainer stops its manager once its own entity is the only one left, then
// kills that entity so the final tick reaps it.
type Drainer struct {
	ecs.Base
	Manager *ecs.Manager
}

func (c *Drainer) Init() bool {
	return c.Manager != nil
}

func (c *Drainer) Update() {
	if c.Manager.Len() > 1 || c.Manager.PendingLen() > 0 {
		return
	}
	c.Manager.SetRunning(false)
	if owner := c.Owner(); owner != nil {
		owner.Kill()
	}
}
