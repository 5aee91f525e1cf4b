package primitive

import (
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// HittableList is a linear container of Hittables. It is the scene's
// unaccelerated baseline and also backs composite shapes like Box.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates an empty list.
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends h to the list.
func (l *HittableList) Add(h Hittable) {
	l.Objects = append(l.Objects, h)
}

// Hit iterates every object, shrinking tMax to the closest hit found so far.
func (l *HittableList) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		hit, ok := obj.Hit(r, tMin, closestSoFar)
		if !ok {
			continue
		}
		hitAnything = true
		closestSoFar = hit.T
		closest = hit
	}

	return closest, hitAnything
}

// BoundingBox is the surround of every child's box. An empty list, or one
// containing an unbounded child, has no box.
func (l *HittableList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true

	for _, obj := range l.Objects {
		objBox, ok := obj.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = objBox
			first = false
			continue
		}
		box = core.Surround(box, objBox)
	}

	return box, true
}
