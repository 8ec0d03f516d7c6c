package ecs

import "github.com/plus3/compose/geom"

// Transform is the placement component every entity receives on construction.
type Transform struct {
	Base
	Position geom.Vec3
	Rotation geom.Quat
	Scale    geom.Vec3
}

// NewTransform returns a transform at the origin with identity rotation and unit scale.
func NewTransform() *Transform {
	return &Transform{
		Position: geom.Zero,
		Rotation: geom.Identity,
		Scale:    geom.One,
	}
}
