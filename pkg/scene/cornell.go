package scene

import (
	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/kbrandt/pathtracer/pkg/primitive"
	"github.com/kbrandt/pathtracer/pkg/texture"
)

// cornellCamera builds the fixed Cornell-box viewpoint shared by both
// cornell scenes: looking along the +Z axis into a 555-unit cube room.
func cornellCamera(aspectRatio float64) *camera.Camera {
	return camera.NewCamera(
		core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0),
		40, aspectRatio, 0, 10, 0, 1,
	)
}

// cornellWalls returns the five walls and ceiling light shared by both
// cornell scenes, but not the boxes each variant fills the room with.
func cornellWalls() []primitive.Hittable {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	return []primitive.Hittable{
		primitive.NewFlipFace(primitive.NewYZRect(0, 555, 0, 555, 555, green)),
		primitive.NewYZRect(0, 555, 0, 555, 0, red),
		primitive.NewXZRect(213, 343, 227, 332, 554, light),
		primitive.NewFlipFace(primitive.NewXZRect(0, 555, 0, 555, 555, white)),
		primitive.NewXZRect(0, 555, 0, 555, 0, white),
		primitive.NewFlipFace(primitive.NewXYRect(0, 555, 0, 555, 555, white)),
	}
}

// buildCornellBox is the empty Cornell box with two solid boxes, one
// rotated, a classic test of diffuse interreflection and soft shadows.
func buildCornellBox(imageWidth int, aspectRatio float64) (*Scene, error) {
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	objects := cornellWalls()

	tall := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallRotated := primitive.NewRotateY(tall, 15)
	tallPlaced := primitive.NewTranslate(tallRotated, core.NewVec3(265, 0, 295))
	objects = append(objects, tallPlaced)

	short := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortRotated := primitive.NewRotateY(short, -18)
	shortPlaced := primitive.NewTranslate(shortRotated, core.NewVec3(130, 0, 65))
	objects = append(objects, shortPlaced)

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		World:      bvhOf(objects),
		Background: integrator.ConstantBackground{},
	}, nil
}

// buildCornellSmoke replaces the two solid boxes with constant-density
// smoke and fog volumes, demonstrating ConstantMedium.
func buildCornellSmoke(imageWidth int, aspectRatio float64) (*Scene, error) {
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	objects := cornellWalls()

	tall := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallRotated := primitive.NewRotateY(tall, 15)
	tallPlaced := primitive.NewTranslate(tallRotated, core.NewVec3(265, 0, 295))
	objects = append(objects, primitive.NewConstantMedium(tallPlaced, 0.01, texture.NewSolid(core.NewVec3(0, 0, 0))))

	short := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortRotated := primitive.NewRotateY(short, -18)
	shortPlaced := primitive.NewTranslate(shortRotated, core.NewVec3(130, 0, 65))
	objects = append(objects, primitive.NewConstantMedium(shortPlaced, 0.01, texture.NewSolid(core.NewVec3(1, 1, 1))))

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		World:      bvhOf(objects),
		Background: integrator.ConstantBackground{},
	}, nil
}
