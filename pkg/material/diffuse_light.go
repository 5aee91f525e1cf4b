package material

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// DiffuseLight emits its texture's value and never scatters.
type DiffuseLight struct {
	Tex texture.Texture
}

// NewDiffuseLight creates a diffuse light material from a texture.
func NewDiffuseLight(tex texture.Texture) *DiffuseLight {
	return &DiffuseLight{Tex: tex}
}

// NewDiffuseLightColor creates a diffuse light material from a solid
// emission color.
func NewDiffuseLightColor(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Tex: texture.NewSolid(emission)}
}

// Scatter implements Material: lights absorb everything.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, rnd *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted implements Material.
func (d *DiffuseLight) Emitted(u, v float64, p core.Point3) core.Color {
	return d.Tex.Value(u, v, p)
}
