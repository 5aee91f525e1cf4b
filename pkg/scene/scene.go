// Package scene assembles a Camera and a world of primitives into the
// named scenes the CLI can render: random-spheres, cornell-box,
// cornell-smoke, earth, perlin-spheres, and final.
package scene

import (
	"fmt"

	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/primitive"
)

// Scene bundles everything a render needs beyond per-invocation sampling
// parameters: the camera, the accelerated world, and the background
// strategy rays use when they escape it.
type Scene struct {
	Camera     *camera.Camera
	World      primitive.Hittable
	Background integrator.Background
}

// Builder constructs a Scene for a given image width and aspect ratio. The
// aspect ratio is threaded through because several scenes (random-spheres,
// earth, perlin-spheres) derive their camera's viewport from it.
type Builder func(imageWidth int, aspectRatio float64) (*Scene, error)

// builders is the named scene catalog the CLI's --scene flag dispatches
// against.
var builders = map[string]Builder{
	"random-spheres": buildRandomSpheres,
	"cornell-box":    buildCornellBox,
	"cornell-smoke":  buildCornellSmoke,
	"earth":          buildEarth,
	"perlin-spheres": buildPerlinSpheres,
	"final":          buildFinal,
}

// Names returns the catalog of scene names accepted by Build.
func Names() []string {
	return []string{"random-spheres", "cornell-box", "cornell-smoke", "earth", "perlin-spheres", "final"}
}

// Build constructs the named scene. It returns an error for an unknown name
// instead of panicking so the CLI can report a clean validation failure,
// and recovers the BVH constructor's hard-failure panic (a primitive with
// no bounding box) into an error too.
func Build(name string, imageWidth int, aspectRatio float64) (s *Scene, err error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (want one of %v)", name, Names())
	}

	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("scene: building %q: %v", name, r)
		}
	}()

	return builder(imageWidth, aspectRatio)
}

// bvhOf wraps objects in a BVH over the shutter interval [0, 1], the
// interval every scene in this package uses.
func bvhOf(objects []primitive.Hittable) *primitive.BVHNode {
	return primitive.NewBVH(objects, 0, 1)
}
