package texture

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/kbrandt/pathtracer/pkg/core"
)

// turbDepth is the number of octaves summed by turb.
const turbDepth = 7

// Noise is a gradient-noise ("Perlin") marble-like texture. It wraps
// go-perlin's single-octave gradient noise and sums it across turbDepth
// doublings of frequency (each weighted by half the previous octave's
// amplitude) to build its own turbulence function, since the spec's turb
// formula needs control over the per-octave weighting that a pre-baked
// multi-octave generator wouldn't expose.
type Noise struct {
	perlin *perlin.Perlin
	Scale  float64
}

// NewNoise creates a noise texture at the given spatial frequency scale.
// seed selects the permutation/gradient tables so renders are reproducible
// given a fixed seed.
func NewNoise(scale float64, seed int64) *Noise {
	// alpha/beta tuned for a single octave per call; turb supplies its own
	// octave summation on top.
	return &Noise{
		perlin: perlin.NewPerlin(2, 2, 1, seed),
		Scale:  scale,
	}
}

func (n *Noise) noise(p core.Point3) float64 {
	return n.perlin.Noise3D(p.X, p.Y, p.Z)
}

// turb sums |noise| at doubling frequencies, each weighted by half the
// previous octave's weight.
func (n *Noise) turb(p core.Point3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(n.noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// Value implements Texture: a marbled pattern from sin(scale·z + 10·turb(p)).
func (n *Noise) Value(u, v float64, p core.Point3) core.Color {
	white := core.NewVec3(1, 1, 1)
	intensity := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.turb(p, turbDepth)))
	return white.Multiply(intensity)
}
