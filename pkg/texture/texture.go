// Package texture implements the (u,v,p) → color lookups materials sample:
// solid colors, a procedural checkerboard, decoded images, and Perlin
// turbulence noise.
package texture

import "github.com/kbrandt/pathtracer/pkg/core"

// Texture maps a surface parameterization and world point to a color.
type Texture interface {
	Value(u, v float64, p core.Point3) core.Color
}

// Solid always returns the same color regardless of (u, v, p).
type Solid struct {
	Color core.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

// Value implements Texture.
func (s *Solid) Value(u, v float64, p core.Point3) core.Color {
	return s.Color
}
