package material

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction.
type Isotropic struct {
	Tex texture.Texture
}

// NewIsotropic creates an isotropic phase-function material from a texture.
func NewIsotropic(tex texture.Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

// Scatter implements Material.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, rnd *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Tex.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomInUnitSphere(rnd), rayIn.Time),
	}, true
}

// Emitted implements Material: phase functions don't emit.
func (i *Isotropic) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Vec3{}
}
