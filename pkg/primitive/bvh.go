package primitive

import (
	"math/rand"
	"sort"

	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/material"
)

// BVHNode is a binary bounding volume hierarchy built by recursively
// splitting a list of Hittables along a randomly chosen axis. It is itself
// a Hittable, so it composes transparently with everything else in the
// scene graph.
type BVHNode struct {
	Left, Right Hittable
	box         core.AABB
}

// NewBVH builds a BVH over objects for the shutter interval [time0, time1].
// objects is consumed (sorted in place) by construction; callers that need
// the original order should pass a copy.
func NewBVH(objects []Hittable, time0, time1 float64) *BVHNode {
	return splitVolumes(objects, time0, time1)
}

func splitVolumes(objects []Hittable, time0, time1 float64) *BVHNode {
	axis := rand.Intn(3)

	var node BVHNode

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if boxCompare(objects[0], objects[1], axis) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return boxCompare(objects[i], objects[j], axis)
		})
		mid := len(objects) / 2
		node.Left = splitVolumes(objects[:mid], time0, time1)
		node.Right = splitVolumes(objects[mid:], time0, time1)
	}

	boxLeft, okLeft := node.Left.BoundingBox(time0, time1)
	boxRight, okRight := node.Right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		panic("primitive: a hittable has no bounding box during BVH construction")
	}
	node.box = core.Surround(boxLeft, boxRight)

	return &node
}

// boxCompare orders a before b by the minimum corner of their bounding box
// along axis.
func boxCompare(a, b Hittable, axis int) bool {
	boxA, _ := a.BoundingBox(0, 0)
	boxB, _ := b.BoundingBox(0, 0)

	switch axis {
	case 0:
		return boxA.Min.X < boxB.Min.X
	case 1:
		return boxA.Min.Y < boxB.Min.Y
	default:
		return boxA.Min.Z < boxB.Min.Z
	}
}

// Hit tests the node's own bounding box first, then recurses into both
// children, bounding the right traversal by the left hit's t so the
// nearest intersection wins. A right hit, when found, is returned; since
// primitives such as Sphere and the rects reject t == tMax, a right hit at
// exactly the left hit's t is not found, and on such a tie the left hit is
// kept.
func (n *BVHNode) Hit(r core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	if !n.box.Hit(r, tMin, tMax) {
		return material.HitRecord{}, false
	}

	hitLeft, okLeft := n.Left.Hit(r, tMin, tMax)

	rightMax := tMax
	if okLeft {
		rightMax = hitLeft.T
	}
	hitRight, okRight := n.Right.Hit(r, tMin, rightMax)

	if okRight {
		return hitRight, true
	}
	if okLeft {
		return hitLeft, true
	}
	return material.HitRecord{}, false
}

// BoundingBox returns the precomputed box surrounding the whole subtree.
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.box, true
}
