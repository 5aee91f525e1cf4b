// Package integrator implements the recursive Monte-Carlo light transport
// estimator that turns a ray and a scene into a single color sample.
package integrator

import (
	"math"
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/primitive"
)

// DefaultMaxDepth is the recursion bound the renderer passes to RayColor
// when its Config leaves MaxDepth at 0 or below.
const DefaultMaxDepth = 50

// Background supplies the radiance seen when a ray escapes the scene
// without striking anything.
type Background interface {
	Sample(r core.Ray) core.Color
}

// ConstantBackground returns the same color for every escaping ray, as in
// an enclosed scene such as a Cornell box.
type ConstantBackground struct {
	Color core.Color
}

// Sample implements Background.
func (b ConstantBackground) Sample(r core.Ray) core.Color {
	return b.Color
}

// SkyBackground linearly interpolates between a horizon and zenith color
// by the ray direction's y component, producing the classic sky gradient.
type SkyBackground struct {
	Horizon core.Color
	Zenith  core.Color
}

// Sample implements Background.
func (b SkyBackground) Sample(r core.Ray) core.Color {
	t := 0.5 * (r.Direction.Unit().Y + 1)
	return core.Lerp(b.Horizon, b.Zenith, t)
}

// RayColor recursively estimates the radiance along r: it intersects world,
// adds the hit material's emission, and (unless the material absorbed the
// ray or depth is exhausted) recurses into the scattered ray, attenuating
// by the material's returned color. t_min is fixed at 0.001 to avoid
// shadow acne from self-intersection at the previous hit point.
func RayColor(r core.Ray, world primitive.Hittable, bg Background, depth int, rnd *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, ok := world.Hit(r, 0.001, math.Inf(1))
	if !ok {
		return bg.Sample(r)
	}

	emitted := hit.Mat.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Mat.Scatter(r, hit, rnd)
	if !didScatter {
		return emitted
	}

	incoming := RayColor(scatter.Scattered, world, bg, depth-1, rnd)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
