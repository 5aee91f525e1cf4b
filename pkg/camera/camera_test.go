package camera

import (
	"math/rand"
	"testing"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestGetRayOriginatesNearLookFrom(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 16.0/9.0, 0, 1, 0, 0,
	)

	rnd := rand.New(rand.NewSource(1))
	r := cam.GetRay(0.5, 0.5, rnd)

	// zero aperture: lens offset collapses to zero, so the origin is exact.
	assert.Equal(t, core.NewVec3(0, 0, 0), r.Origin)
}

func TestGetRayCentersPointDownLookAtAxis(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 1.0, 0, 1, 0, 0,
	)

	rnd := rand.New(rand.NewSource(1))
	r := cam.GetRay(0.5, 0.5, rnd)

	dir := r.Direction.Unit()
	assert.InDelta(t, 0, dir.X, 1e-9)
	assert.InDelta(t, 0, dir.Y, 1e-9)
	assert.Less(t, dir.Z, 0.0)
}

func TestGetRaySamplesShutterWithinInterval(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 16.0/9.0, 0, 1, 1, 2,
	)

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		r := cam.GetRay(0.5, 0.5, rnd)
		assert.GreaterOrEqual(t, r.Time, 1.0)
		assert.LessOrEqual(t, r.Time, 2.0)
	}
}

func TestBuilderMatchesNewCamera(t *testing.T) {
	want := NewCamera(
		core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		40, 1.5, 0.1, 10, 0, 1,
	)
	got := NewCameraBuilder().
		LookFrom(core.NewVec3(1, 2, 3)).
		LookAt(core.NewVec3(0, 0, 0)).
		UpDirection(core.NewVec3(0, 1, 0)).
		VerticalFOV(40).
		AspectRatio(1.5).
		Aperture(0.1).
		FocusDistance(10).
		ShutterInterval(0, 1).
		Build()

	assert.Equal(t, want, got)
}
