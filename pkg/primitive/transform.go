package primitive

import (
	"math"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// Translate offsets an inner Hittable by a fixed vector: the incoming ray
// is moved into the inner's frame, then the hit point (not the normal) is
// moved back.
type Translate struct {
	Inner  Hittable
	Offset core.Vec3
}

// NewTranslate wraps inner, offsetting it by offset.
func NewTranslate(inner Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit implements Hittable.
func (t *Translate) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	moved := core.NewRayAtTime(r.Origin.Subtract(t.Offset), r.Direction, r.Time)
	hit, ok := t.Inner.Hit(moved, tMin, tMax)
	if !ok {
		return material.HitRecord{}, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox offsets the inner's box by Offset.
func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rotates an inner Hittable about the Y axis by a fixed angle in
// degrees.
type RotateY struct {
	Inner      Hittable
	sinTheta   float64
	cosTheta   float64
	box        core.AABB
	hasBox     bool
}

// NewRotateY wraps inner, rotating it by degrees around the Y axis.
func NewRotateY(inner Hittable, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box, hasBox := inner.BoundingBox(0, 1)
	rot := &RotateY{Inner: inner, sinTheta: sinTheta, cosTheta: cosTheta, hasBox: hasBox}
	if !hasBox {
		return rot
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := pick(i, box.Min.X, box.Max.X)
				y := pick(j, box.Min.Y, box.Max.Y)
				z := pick(k, box.Min.Z, box.Max.Z)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				corner := core.NewVec3(newX, y, newZ)

				min = core.NewVec3(math.Min(min.X, corner.X), math.Min(min.Y, corner.Y), math.Min(min.Z, corner.Z))
				max = core.NewVec3(math.Max(max.X, corner.X), math.Max(max.Y, corner.Y), math.Max(max.Z, corner.Z))
			}
		}
	}

	rot.box = core.NewAABB(min, max)
	return rot
}

func pick(i int, lo, hi float64) float64 {
	if i == 0 {
		return lo
	}
	return hi
}

func (rt *RotateY) rotateIntoInner(v core.Vec3) core.Vec3 {
	x := rt.cosTheta*v.X - rt.sinTheta*v.Z
	z := rt.sinTheta*v.X + rt.cosTheta*v.Z
	return core.NewVec3(x, v.Y, z)
}

func (rt *RotateY) rotateOutOfInner(v core.Vec3) core.Vec3 {
	x := rt.cosTheta*v.X + rt.sinTheta*v.Z
	z := -rt.sinTheta*v.X + rt.cosTheta*v.Z
	return core.NewVec3(x, v.Y, z)
}

// Hit implements Hittable: rotates the ray into the inner frame, delegates,
// then rotates the hit point and normal back.
func (rt *RotateY) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	origin := rt.rotateIntoInner(r.Origin)
	direction := rt.rotateIntoInner(r.Direction)
	rotated := core.NewRayAtTime(origin, direction, r.Time)

	hit, ok := rt.Inner.Hit(rotated, tMin, tMax)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = rt.rotateOutOfInner(hit.Point)
	hit.Normal = rt.rotateOutOfInner(hit.Normal)
	return hit, true
}

// BoundingBox returns the rotation of the inner box's eight corners, taking
// componentwise min/max.
func (rt *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return rt.box, rt.hasBox
}

// FlipFace delegates to an inner Hittable and inverts FrontFace, turning a
// single-sided rect inward.
type FlipFace struct {
	Inner Hittable
}

// NewFlipFace wraps inner, flipping the FrontFace of every hit.
func NewFlipFace(inner Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit implements Hittable.
func (f *FlipFace) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	hit, ok := f.Inner.Hit(r, tMin, tMax)
	if !ok {
		return material.HitRecord{}, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the inner Hittable.
func (f *FlipFace) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(t0, t1)
}
