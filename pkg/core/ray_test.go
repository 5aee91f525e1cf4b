package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRay_AtZeroIsOrigin(t *testing.T) {
	r := NewRayAtTime(NewVec3(1, 2, 3), NewVec3(0, 0, 1), 0.5)
	assert.Equal(t, r.Origin, r.At(0))
}

func TestRay_AtIsLinearInT(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3))

	p1 := r.At(1)
	p2 := r.At(2)

	// linear: At(2) - At(1) == At(1) - At(0)
	assert.Equal(t, p2.Subtract(p1), p1.Subtract(r.At(0)))
}

func TestRay_TimeIsCarried(t *testing.T) {
	r := NewRayAtTime(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 0.37)
	assert.Equal(t, 0.37, r.Time)
}
