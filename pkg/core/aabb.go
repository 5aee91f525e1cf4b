package core

import "math"

// AABB is an axis-aligned bounding box with min <= max componentwise.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from two corners, ordering them componentwise so
// Min <= Max always holds regardless of argument order.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// Hit runs the slab test, returning whether the ray intersects the box within
// (tMin, tMax). Symmetric in the sign of each direction component.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	max := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < min[axis] || origin[axis] > max[axis] {
				return false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t0 := (min[axis] - origin[axis]) * invD
		t1 := (max[axis] - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Surround returns the AABB that bounds both a and b: their componentwise
// min/max.
func Surround(a, b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Expand pads the box by amount in every direction, e.g. to give a
// degenerate-axis box a small finite thickness. The axis rects in
// pkg/primitive do not call it; they pad their own degenerate axis.
func (b AABB) Expand(amount float64) AABB {
	pad := NewVec3(amount, amount, amount)
	return AABB{Min: b.Min.Subtract(pad), Max: b.Max.Add(pad)}
}
