package scene

import (
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/loaders"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/kbrandt/pathtracer/pkg/primitive"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// buildFinal is the "Ray Tracing: The Next Week" closing scene: a ground
// of randomly tall boxes, a moving sphere, glass and metal spheres, two
// fog volumes (one local, one global haze), an earth-textured sphere, a
// perlin sphere, and a rotated/translated cube of small spheres.
func buildFinal(imageWidth int, aspectRatio float64) (*Scene, error) {
	cam := camera.NewCamera(
		core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0),
		40, aspectRatio, 0, 10, 0, 1,
	)

	rnd := rand.New(rand.NewSource(1))
	groundMat := material.NewLambertianColor(core.NewVec3(0.48, 0.83, 0.53))

	var groundBoxes []primitive.Hittable
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := 1 + rnd.Float64()*100
			z1 := z0 + w
			groundBoxes = append(groundBoxes, primitive.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), groundMat))
		}
	}

	var objects []primitive.Hittable
	objects = append(objects, bvhOf(groundBoxes))

	light := material.NewDiffuseLightColor(core.NewVec3(7, 7, 7))
	objects = append(objects, primitive.NewXZRect(123, 423, 147, 412, 554, light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	movingMat := material.NewLambertianColor(core.NewVec3(0.7, 0.3, 0.1))
	objects = append(objects, primitive.NewMovingSphere(center1, center2, 0, 1, 50, movingMat))

	objects = append(objects, primitive.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	objects = append(objects, primitive.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10)))

	boundary := primitive.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects, boundary)
	objects = append(objects, primitive.NewConstantMedium(boundary, 0.2, texture.NewSolid(core.NewVec3(0.2, 0.4, 0.9))))

	mist := primitive.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, primitive.NewConstantMedium(mist, 0.0001, texture.NewSolid(core.NewVec3(1, 1, 1))))

	earthTex, err := loaders.LoadImage(earthTexturePath)
	if err == nil {
		objects = append(objects, primitive.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertian(earthTex)))
	}

	perlin := texture.NewNoise(0.1, 2)
	objects = append(objects, primitive.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertian(perlin)))

	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	var innerSpheres []primitive.Hittable
	const sphereCount = 1000
	for i := 0; i < sphereCount; i++ {
		center := core.NewVec3(rnd.Float64()*165, rnd.Float64()*165, rnd.Float64()*165)
		innerSpheres = append(innerSpheres, primitive.NewSphere(center, 10, white))
	}
	sphereBox := bvhOf(innerSpheres)
	rotated := primitive.NewRotateY(sphereBox, 15)
	placed := primitive.NewTranslate(rotated, core.NewVec3(-100, 270, 395))
	objects = append(objects, placed)

	return &Scene{
		Camera:     cam,
		World:      bvhOf(objects),
		Background: integrator.ConstantBackground{},
	}, nil
}
