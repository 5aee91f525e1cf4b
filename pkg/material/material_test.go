package material

import (
	"math/rand"
	"testing"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hitAt(point, normal core.Vec3, mat Material) HitRecord {
	h := HitRecord{Point: point, T: 1, U: 0.5, V: 0.5, Mat: mat}
	h.SetFaceNormal(core.NewRay(core.Vec3{}, point.Negate()), normal)
	return h
}

func TestLambertian_AttenuationMatchesTexture(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	albedo := core.NewVec3(0.5, 0.25, 0.75)
	lamb := NewLambertianColor(albedo)

	hit := hitAt(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), lamb)
	result, ok := lamb.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, rnd)

	require.True(t, ok)
	assert.Equal(t, albedo, result.Attenuation)
	assert.GreaterOrEqual(t, result.Scattered.Direction.Dot(hit.Normal), -1.0)
}

func TestMetal_ZeroFuzzReflectionIsInvolution(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	normal := core.NewVec3(0, 1, 0)
	incoming := core.NewVec3(1, -1, 0).Unit()

	reflected := core.Reflect(incoming, normal)
	reflectedTwice := core.Reflect(reflected, normal)

	assert.InDelta(t, incoming.X, reflectedTwice.X, 1e-12)
	assert.InDelta(t, incoming.Y, reflectedTwice.Y, 1e-12)
	assert.InDelta(t, incoming.Z, reflectedTwice.Z, 1e-12)

	m := NewMetal(core.NewVec3(1, 1, 1), 0)
	hit := hitAt(core.NewVec3(0, 1, 0), normal, m)
	result, ok := m.Scatter(core.NewRay(core.Vec3{}, incoming), hit, rnd)
	require.True(t, ok)
	assert.InDelta(t, reflected.X, result.Scattered.Direction.X, 1e-12)
}

func TestMetal_RejectsDirectionUnderSurface(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	m := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	normal := core.NewVec3(0, 1, 0)

	// Grazing incoming ray with max fuzz pushes the reflection under the
	// surface on roughly half the draws; run enough trials that a rejection
	// is observed at least once without asserting it happens on a specific
	// draw.
	sawRejection := false
	for i := 0; i < 200; i++ {
		hit := hitAt(core.NewVec3(0, 1, 0), normal, m)
		_, ok := m.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, -0.01, 0)), hit, rnd)
		if !ok {
			sawRejection = true
			break
		}
	}
	assert.True(t, sawRejection, "expected at least one scatter to be rejected as under the surface")
}

func TestDielectric_GrazingAngleReflectanceApproachesOne(t *testing.T) {
	r := core.Schlick(0.001, 1.0/1.5)
	assert.Greater(t, r, 0.9)
}

func TestDiffuseLight_EmitsTextureNeverScatters(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	emission := core.NewVec3(4, 4, 4)
	light := NewDiffuseLightColor(emission)

	hit := hitAt(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), light)
	_, ok := light.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, rnd)
	assert.False(t, ok)
	assert.Equal(t, emission, light.Emitted(0.5, 0.5, core.Vec3{}))
}

func TestIsotropic_AttenuationMatchesTexture(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tex := texture.NewSolid(core.NewVec3(0.8, 0.8, 0.9))
	iso := NewIsotropic(tex)

	hit := HitRecord{Point: core.NewVec3(1, 1, 1), U: 0.2, V: 0.2}
	result, ok := iso.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), hit, rnd)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(0.8, 0.8, 0.9), result.Attenuation)
}
