package scene

import (
	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/kbrandt/pathtracer/pkg/primitive"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// buildPerlinSpheres builds two spheres sharing a Perlin marble texture: a
// giant ground sphere and a floating feature sphere.
func buildPerlinSpheres(imageWidth int, aspectRatio float64) (*Scene, error) {
	cam := camera.NewCamera(
		core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		20, aspectRatio, 0, 10, 0, 1,
	)

	noise := texture.NewNoise(4, 1)
	mat := material.NewLambertian(noise)

	objects := []primitive.Hittable{
		primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		primitive.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
	}

	return &Scene{
		Camera:     cam,
		World:      bvhOf(objects),
		Background: integrator.SkyBackground{Horizon: core.NewVec3(1, 1, 1), Zenith: core.NewVec3(0.5, 0.7, 1.0)},
	}, nil
}
