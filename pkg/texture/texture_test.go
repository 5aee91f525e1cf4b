package texture

import (
	"testing"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestSolid_AlwaysSameColor(t *testing.T) {
	c := core.NewVec3(0.2, 0.4, 0.6)
	tex := NewSolid(c)

	assert.Equal(t, c, tex.Value(0, 0, core.NewVec3(1, 2, 3)))
	assert.Equal(t, c, tex.Value(0.9, 0.1, core.NewVec3(-5, 0, 9)))
}

func TestChecker_AlternatesBySign(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	tex := NewChecker(even, odd)

	// sin(10*0.05)*sin(10*0.05)*sin(10*0.05) > 0 near the origin on the
	// positive octant for a small offset.
	got := tex.Value(0, 0, core.NewVec3(0.05, 0.05, 0.05))
	assert.Equal(t, even, got)
}

func TestImage_EmptyBufferReturnsSentinel(t *testing.T) {
	img := NewImage(0, 0, nil)
	assert.Equal(t, cyan, img.Value(0.5, 0.5, core.Vec3{}))
}

func TestImage_SamplesNearestPixel(t *testing.T) {
	// 2x1 image: left pixel red, right pixel green.
	pixels := []byte{255, 0, 0, 0, 255, 0}
	img := NewImage(2, 1, pixels)

	left := img.Value(0.1, 0.5, core.Vec3{})
	right := img.Value(0.9, 0.5, core.Vec3{})

	assert.InDelta(t, 1.0, left.X, 1e-9)
	assert.InDelta(t, 1.0, right.Y, 1e-9)
}

func TestNoise_Deterministic(t *testing.T) {
	a := NewNoise(4, 42)
	b := NewNoise(4, 42)

	p := core.NewVec3(1.5, 2.5, 3.5)
	assert.Equal(t, a.Value(0, 0, p), b.Value(0, 0, p))
}

func TestNoise_ValueInRange(t *testing.T) {
	n := NewNoise(4, 7)
	c := n.Value(0, 0, core.NewVec3(0.3, 1.7, -2.1))

	assert.GreaterOrEqual(t, c.X, 0.0)
	assert.LessOrEqual(t, c.X, 1.0)
}
