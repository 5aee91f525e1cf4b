package material

import (
	"math"
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
)

// Dielectric is a transparent material like glass or water that both
// reflects and refracts.
type Dielectric struct {
	IndexOfRefraction float64
}

// NewDielectric creates a dielectric material of the given IOR.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IndexOfRefraction: ior}
}

// Scatter implements Material: Schlick-weighted choice between reflection
// and refraction, forcing reflection under total internal reflection.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, rnd *rand.Rand) (ScatterRecord, bool) {
	eta := d.IndexOfRefraction
	if hit.FrontFace {
		eta = 1.0 / d.IndexOfRefraction
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Schlick(cosTheta, eta) > rnd.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, eta)
	}

	return ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// Emitted implements Material: dielectric surfaces don't emit.
func (d *Dielectric) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Vec3{}
}
