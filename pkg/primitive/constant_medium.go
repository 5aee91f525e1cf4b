package primitive

import (
	"math"
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// ConstantMedium is a homogeneous participating medium (smoke, fog, mist)
// bounded by a convex Hittable. A ray entering the boundary scatters at a
// depth sampled from an exponential free-path distribution; it does not
// work for non-convex boundaries or boundaries enclosing voids.
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density filling boundary,
// colored by tex via an isotropic phase function.
func NewConstantMedium(boundary Hittable, density float64, tex texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(tex),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the ray's two intersections with the boundary, then samples a
// scattering distance inside that span via -1/density * ln(U). A miss of
// the sampled distance against the span means the ray passed through
// without scattering.
func (m *ConstantMedium) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, math.Inf(-1), math.Inf(1))
	if !ok {
		return material.HitRecord{}, false
	}

	rec2, ok := m.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1))
	if !ok {
		return material.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}

	if rec1.T >= rec2.T {
		return material.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.negInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	hit := material.HitRecord{
		T:         t,
		Point:     r.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Mat:       m.PhaseFunction,
		U:         rec1.U,
		V:         rec1.V,
	}
	return hit, true
}

// BoundingBox delegates to the boundary.
func (m *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(t0, t1)
}
