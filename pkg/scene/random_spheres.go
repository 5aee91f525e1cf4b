package scene

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/kbrandt/pathtracer/pkg/primitive"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// buildRandomSpheres builds the canonical "Ray Tracing In One Weekend"
// closing scene: a checkered ground sphere, a field of small random
// spheres (some moving, some metal, some glass), and three large feature
// spheres.
func buildRandomSpheres(imageWidth int, aspectRatio float64) (*Scene, error) {
	cam := camera.NewCamera(
		core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		20, aspectRatio, 0, 10, 0, 1,
	)

	var objects []primitive.Hittable

	checker := texture.NewCheckerTextures(
		texture.NewSolid(core.NewVec3(0.2, 0.3, 0.1)),
		texture.NewSolid(core.NewVec3(0.9, 0.9, 0.9)),
	)
	ground := material.NewLambertian(checker)
	objects = append(objects, primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	rnd := rand.New(rand.NewSource(1))
	avoid := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*rnd.Float64(), 0.2, float64(b)+0.9*rnd.Float64())
			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			prob := rnd.Float64()
			switch {
			case prob < 0.1:
				albedo := randomColor(rnd).MultiplyVec(randomColor(rnd))
				center2 := center.Add(core.NewVec3(0, rnd.Float64()*0.5, 0))
				mat := material.NewLambertianColor(albedo)
				objects = append(objects, primitive.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
			case prob < 0.8:
				albedo := randomColor(rnd).MultiplyVec(randomColor(rnd))
				mat := material.NewLambertianColor(albedo)
				objects = append(objects, primitive.NewSphere(center, 0.2, mat))
			case prob < 0.95:
				albedo := randomColorRange(rnd, 0.5, 1)
				fuzz := rnd.Float64() * 0.5
				mat := material.NewMetal(albedo, fuzz)
				objects = append(objects, primitive.NewSphere(center, 0.2, mat))
			default:
				mat := material.NewDielectric(1.5)
				objects = append(objects, primitive.NewSphere(center, 0.2, mat))
			}
		}
	}

	objects = append(objects, primitive.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	objects = append(objects, primitive.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertianColor(core.NewVec3(1, 0.1, 0.1))))
	objects = append(objects, primitive.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return &Scene{
		Camera:     cam,
		World:      bvhOf(objects),
		Background: integrator.SkyBackground{Horizon: core.NewVec3(1, 1, 1), Zenith: core.NewVec3(0.5, 0.7, 1.0)},
	}, nil
}

func randomColor(rnd *rand.Rand) core.Color {
	return core.NewVec3(rnd.Float64(), rnd.Float64(), rnd.Float64())
}

func randomColorRange(rnd *rand.Rand, min, max float64) core.Color {
	span := max - min
	return core.NewVec3(min+rnd.Float64()*span, min+rnd.Float64()*span, min+rnd.Float64()*span)
}
