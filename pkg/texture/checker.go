package texture

import (
	"math"

	"github.com/kbrandt/pathtracer/pkg/core"
)

// Checker alternates between two sub-textures based on the sign of
// sin(10x)·sin(10y)·sin(10z), producing a 3-D checkerboard pattern that
// doesn't depend on UV parameterization.
type Checker struct {
	Even, Odd Texture
}

// NewChecker creates a checker texture from two solid colors.
func NewChecker(even, odd core.Color) *Checker {
	return &Checker{Even: NewSolid(even), Odd: NewSolid(odd)}
}

// NewCheckerTextures creates a checker texture from two arbitrary
// sub-textures.
func NewCheckerTextures(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p core.Point3) core.Color {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
