package material

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material: it scatters toward
// normal + random_unit_vector() and attenuates by its texture's value.
type Lambertian struct {
	Tex texture.Texture
}

// NewLambertian creates a Lambertian material from a texture.
func NewLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

// NewLambertianColor creates a Lambertian material from a solid color.
func NewLambertianColor(albedo core.Color) *Lambertian {
	return &Lambertian{Tex: texture.NewSolid(albedo)}
}

// Scatter implements Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, rnd *rand.Rand) (ScatterRecord, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rnd))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterRecord{
		Attenuation: l.Tex.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// Emitted implements Material: Lambertian surfaces don't emit.
func (l *Lambertian) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Vec3{}
}
