package primitive

import (
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// rectEpsilon is the thickness given to a rect's bounding box along its
// degenerate axis so BVH slab tests remain numerically stable.
const rectEpsilon = 0.0001

// XYRect is an axis-aligned rectangle in the plane z = K, spanning
// [X0, X1] x [Y0, Y1].
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Mat               material.Material
}

// NewXYRect creates an XY rect.
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Mat: mat}
}

// Hit implements Hittable.
func (rc *XYRect) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	t := (rc.K - r.Origin.Z) / r.Direction.Z
	if t <= tMin || t >= tMax {
		return material.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	y := r.Origin.Y + t*r.Direction.Y
	if x < rc.X0 || x > rc.X1 || y < rc.Y0 || y > rc.Y1 {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:     t,
		U:     (x - rc.X0) / (rc.X1 - rc.X0),
		V:     (y - rc.Y0) / (rc.Y1 - rc.Y0),
		Point: r.At(t),
		Mat:   rc.Mat,
	}
	hit.SetFaceNormal(r, core.NewVec3(0, 0, 1))
	return hit, true
}

// BoundingBox returns a box padded by rectEpsilon along the degenerate z
// axis.
func (rc *XYRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(rc.X0, rc.Y0, rc.K-rectEpsilon),
		core.NewVec3(rc.X1, rc.Y1, rc.K+rectEpsilon),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K, spanning
// [X0, X1] x [Z0, Z1].
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Mat               material.Material
}

// NewXZRect creates an XZ rect.
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Mat: mat}
}

// Hit implements Hittable.
func (rc *XZRect) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	t := (rc.K - r.Origin.Y) / r.Direction.Y
	if t <= tMin || t >= tMax {
		return material.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	if x < rc.X0 || x > rc.X1 || z < rc.Z0 || z > rc.Z1 {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:     t,
		U:     (x - rc.X0) / (rc.X1 - rc.X0),
		V:     (z - rc.Z0) / (rc.Z1 - rc.Z0),
		Point: r.At(t),
		Mat:   rc.Mat,
	}
	hit.SetFaceNormal(r, core.NewVec3(0, 1, 0))
	return hit, true
}

// BoundingBox returns a box padded by rectEpsilon along the degenerate y
// axis.
func (rc *XZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(rc.X0, rc.K-rectEpsilon, rc.Z0),
		core.NewVec3(rc.X1, rc.K+rectEpsilon, rc.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x = K, spanning
// [Y0, Y1] x [Z0, Z1].
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Mat               material.Material
}

// NewYZRect creates a YZ rect.
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Mat: mat}
}

// Hit implements Hittable.
func (rc *YZRect) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	t := (rc.K - r.Origin.X) / r.Direction.X
	if t <= tMin || t >= tMax {
		return material.HitRecord{}, false
	}
	y := r.Origin.Y + t*r.Direction.Y
	z := r.Origin.Z + t*r.Direction.Z
	if y < rc.Y0 || y > rc.Y1 || z < rc.Z0 || z > rc.Z1 {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:     t,
		U:     (y - rc.Y0) / (rc.Y1 - rc.Y0),
		V:     (z - rc.Z0) / (rc.Z1 - rc.Z0),
		Point: r.At(t),
		Mat:   rc.Mat,
	}
	hit.SetFaceNormal(r, core.NewVec3(1, 0, 0))
	return hit, true
}

// BoundingBox returns a box padded by rectEpsilon along the degenerate x
// axis.
func (rc *YZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(rc.K-rectEpsilon, rc.Y0, rc.Z0),
		core.NewVec3(rc.K+rectEpsilon, rc.Y1, rc.Z1),
	), true
}
