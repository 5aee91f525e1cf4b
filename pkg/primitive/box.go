package primitive

import (
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// Box is an axis-aligned box composed of six rects, one flipped per axis
// pair so every outward normal points away from the box interior.
type Box struct {
	Min, Max core.Point3
	sides    *HittableList
}

// NewBox creates a box spanning [min, max].
func NewBox(min, max core.Point3, mat material.Material) *Box {
	sides := NewHittableList()

	sides.Add(NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat))
	sides.Add(NewFlipFace(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat)))

	sides.Add(NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat))
	sides.Add(NewFlipFace(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat)))

	sides.Add(NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat))
	sides.Add(NewFlipFace(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat)))

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit implements Hittable by delegating to the six constituent rects.
func (b *Box) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax)
}

// BoundingBox returns the box's own extent.
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
