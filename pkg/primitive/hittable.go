// Package primitive implements the Hittable substrate: ray-object
// intersection and bounding boxes for spheres, rects, boxes, participating
// media, transform wrappers, and the BVH container itself.
package primitive

import (
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// Hittable is any object supporting ray intersection and bounding-box
// queries over the shutter interval [t0, t1].
type Hittable interface {
	Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool)
	BoundingBox(t0, t1 float64) (core.AABB, bool)
}
