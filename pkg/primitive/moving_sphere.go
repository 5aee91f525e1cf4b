package primitive

import (
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// MovingSphere linearly interpolates its center between Center0 at Time0 and
// Center1 at Time1; intersection uses the center at the ray's time.
type MovingSphere struct {
	Center0, Center1 core.Point3
	Time0, Time1     float64
	Radius           float64
	Mat              material.Material
}

// NewMovingSphere creates a moving sphere.
func NewMovingSphere(center0, center1 core.Point3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Mat: mat}
}

// CenterAt returns the sphere's center at the given time. Times outside
// [Time0, Time1] extrapolate linearly; the shutter interval need not match
// this sphere's own motion interval.
func (m *MovingSphere) CenterAt(time float64) core.Point3 {
	t := (time - m.Time0) / (m.Time1 - m.Time0)
	return core.Lerp(m.Center0, m.Center1, t)
}

// Hit implements Hittable using the center at the ray's carried time.
func (m *MovingSphere) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return sphereHit(r, m.CenterAt(r.Time), m.Radius, m.Mat, tMin, tMax)
}

// BoundingBox is the surround of the two extreme-time spheres.
func (m *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	rad := core.NewVec3(m.Radius, m.Radius, m.Radius)
	box0 := core.NewAABB(m.CenterAt(t0).Subtract(rad), m.CenterAt(t0).Add(rad))
	box1 := core.NewAABB(m.CenterAt(t1).Subtract(rad), m.CenterAt(t1).Add(rad))
	return core.Surround(box0, box1), true
}
