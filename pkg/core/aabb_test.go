package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABB_SurroundContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 2, 0.5), NewVec3(0.5, 3, 2))

	s := Surround(a, b)

	assert.LessOrEqual(t, s.Min.X, a.Min.X)
	assert.LessOrEqual(t, s.Min.X, b.Min.X)
	assert.GreaterOrEqual(t, s.Max.Y, a.Max.Y)
	assert.GreaterOrEqual(t, s.Max.Y, b.Max.Y)
}

func TestAABB_HitSymmetricInDirectionSign(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	rPos := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))
	rNeg := NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0))

	require.True(t, box.Hit(rPos, 0, 1e9))
	require.True(t, box.Hit(rNeg, 0, 1e9))
}

func TestAABB_MissOutsideSlab(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	r := NewRay(NewVec3(-5, 5, 0), NewVec3(1, 0, 0))

	assert.False(t, box.Hit(r, 0, 1e9))
}

func TestAABB_LongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	assert.Equal(t, 1, box.LongestAxis())
}
