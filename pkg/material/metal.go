package material

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
)

// Metal is a specular material with an optional fuzz perturbation.
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // clamped to [0, 1]
}

// NewMetal creates a metal material, clamping fuzz to [0, 1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements Material: reflects the incoming direction about the
// normal, perturbs by fuzz*random_in_unit_sphere(), and rejects the scatter
// if the result points back into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, rnd *rand.Rand) (ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Unit(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rnd).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{Attenuation: m.Albedo, Scattered: scattered}, true
}

// Emitted implements Material: metal surfaces don't emit.
func (m *Metal) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Vec3{}
}
