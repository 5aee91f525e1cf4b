package primitive

import (
	"math"
	"testing"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereHitFromOutside(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 0, 0))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := sphere.Hit(r, 0.001, 1000)
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.T, 1e-9)
	assert.True(t, hit.FrontFace)
	assert.InDelta(t, 1, hit.Normal.Length(), 1e-9)
}

func TestSphereMiss(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 0, 0))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	r := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1))
	_, ok := sphere.Hit(r, 0.001, 1000)
	assert.False(t, ok)
}

func TestSphereBoundingBox(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 0, 0))
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, mat)

	box, ok := sphere.BoundingBox(0, 1)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(-1, 0, 1), box.Min)
	assert.Equal(t, core.NewVec3(3, 4, 5), box.Max)
}

func TestSphereUVPoles(t *testing.T) {
	u, v := sphereUV(core.NewVec3(0, 1, 0))
	assert.InDelta(t, 1.0, v, 1e-9)
	_ = u

	u2, v2 := sphereUV(core.NewVec3(0, -1, 0))
	assert.InDelta(t, 0.0, v2, 1e-9)
	_ = u2
}

func TestSphereUVInRange(t *testing.T) {
	for theta := 0.0; theta < math.Pi; theta += 0.3 {
		for phi := -math.Pi; phi < math.Pi; phi += 0.3 {
			p := core.NewVec3(math.Sin(theta)*math.Cos(phi), math.Cos(theta), math.Sin(theta)*math.Sin(phi))
			u, v := sphereUV(p)
			assert.GreaterOrEqual(t, u, -1e-9)
			assert.LessOrEqual(t, u, 1+1e-9)
			assert.GreaterOrEqual(t, v, -1e-9)
			assert.LessOrEqual(t, v, 1+1e-9)
		}
	}
}
