package primitive

import (
	"math"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// Sphere is a static sphere.
type Sphere struct {
	Center core.Point3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a static sphere.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit solves |o + t*d - c|^2 = r^2 for the nearest root in (tMin, tMax).
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return sphereHit(r, s.Center, s.Radius, s.Mat, tMin, tMax)
}

// BoundingBox returns the cube of side 2r centered on Center.
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	rad := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(rad), s.Center.Add(rad)), true
}

// sphereHit is the shared sphere-intersection routine used by Sphere and
// MovingSphere (which supplies a time-dependent center).
func sphereHit(r core.Ray, center core.Point3, radius float64, mat material.Material, tMin, tMax float64) (material.HitRecord, bool) {
	oc := r.Origin.Subtract(center)
	a := r.Direction.Dot(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return material.HitRecord{}, false
		}
	}

	p := r.At(root)
	outwardNormal := p.Subtract(center).Multiply(1.0 / radius)
	u, v := sphereUV(outwardNormal)

	hit := material.HitRecord{T: root, Point: p, Mat: mat, U: u, V: v}
	hit.SetFaceNormal(r, outwardNormal)
	return hit, true
}

// sphereUV computes (u, v) surface parameters from a unit outward normal:
// u = 1 - (phi+pi)/(2*pi), v = (theta+pi/2)/pi, with phi = atan2(z, x),
// theta = asin(y). This is the spec's resolution of the get_sphere_uv
// ambiguity; not the mirrored variant some sources use.
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(p.Y)
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}
