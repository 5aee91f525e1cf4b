package primitive

import (
	"math/rand"
	"testing"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSpheres(n int, rnd *rand.Rand) []Hittable {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	objects := make([]Hittable, n)
	for i := range objects {
		center := core.NewVec3(rnd.Float64()*20-10, rnd.Float64()*20-10, rnd.Float64()*20-10)
		objects[i] = NewSphere(center, 0.3+rnd.Float64(), mat)
	}
	return objects
}

func toList(objects []Hittable) *HittableList {
	list := NewHittableList()
	for _, o := range objects {
		list.Add(o)
	}
	return list
}

// TestBVHMatchesLinearListAcrossRandomRays checks that a BVH built over a
// random scene agrees with the unaccelerated HittableList baseline on
// whether and where a large sample of random rays hit.
func TestBVHMatchesLinearListAcrossRandomRays(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	objects := randomSpheres(50, rnd)

	list := toList(append([]Hittable(nil), objects...))
	bvh := NewBVH(append([]Hittable(nil), objects...), 0, 1)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(rnd.Float64()*40-20, rnd.Float64()*40-20, rnd.Float64()*40-20)
		dir := core.NewVec3(rnd.Float64()*2-1, rnd.Float64()*2-1, rnd.Float64()*2-1)
		r := core.NewRay(origin, dir)

		wantHit, wantOK := list.Hit(r, 0.001, 1000)
		gotHit, gotOK := bvh.Hit(r, 0.001, 1000)

		require.Equal(t, wantOK, gotOK, "ray %d disagreement on hit", i)
		if wantOK {
			assert.InDelta(t, wantHit.T, gotHit.T, 1e-6, "ray %d t mismatch", i)
		}
	}
}

func TestBVHBoundingBoxSurroundsAllChildren(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	objects := randomSpheres(10, rnd)
	list := toList(append([]Hittable(nil), objects...))
	bvh := NewBVH(append([]Hittable(nil), objects...), 0, 1)

	wantBox, ok := list.BoundingBox(0, 1)
	require.True(t, ok)
	gotBox, ok := bvh.BoundingBox(0, 1)
	require.True(t, ok)

	assert.InDelta(t, wantBox.Min.X, gotBox.Min.X, 1e-9)
	assert.InDelta(t, wantBox.Min.Y, gotBox.Min.Y, 1e-9)
	assert.InDelta(t, wantBox.Min.Z, gotBox.Min.Z, 1e-9)
	assert.InDelta(t, wantBox.Max.X, gotBox.Max.X, 1e-9)
	assert.InDelta(t, wantBox.Max.Y, gotBox.Max.Y, 1e-9)
	assert.InDelta(t, wantBox.Max.Z, gotBox.Max.Z, 1e-9)
}

func TestBVHSingleObject(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 0, 0))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	bvh := NewBVH([]Hittable{sphere}, 0, 1)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := bvh.Hit(r, 0.001, 1000)
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.T, 1e-9)
}
