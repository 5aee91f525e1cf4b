// Package material implements the scatter/emit laws that drive recursive
// light transport: Lambertian, metal, dielectric, diffuse light, isotropic.
package material

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
)

// HitRecord describes a ray-primitive intersection. Normal is the outward
// normal flipped so it always opposes the incoming ray; FrontFace records
// whether the geometric front face was struck.
type HitRecord struct {
	Point     core.Point3
	Normal    core.Vec3
	Mat       Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal sets Normal and FrontFace from the geometric outward normal
// and the incoming ray direction.
func (h *HitRecord) SetFaceNormal(r core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is the outcome of a material sampling a scattered ray.
type ScatterRecord struct {
	Attenuation core.Color
	Scattered   core.Ray
}

// Material is the polymorphic scatter/emit law attached to a primitive.
type Material interface {
	// Scatter samples an outgoing ray and its attenuation for an incoming
	// ray that struck hit. ok is false when the material absorbs the ray
	// (e.g. a light, or a metal whose perturbed reflection crossed under
	// the surface).
	Scatter(rayIn core.Ray, hit HitRecord, rnd *rand.Rand) (ScatterRecord, bool)
	// Emitted returns the light radiated by the material independent of
	// incident light; black for non-emissive materials.
	Emitted(u, v float64, p core.Point3) core.Color
}
