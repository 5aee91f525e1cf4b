package scene

import (
	"fmt"

	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/loaders"
	"github.com/kbrandt/pathtracer/pkg/material"
	"github.com/kbrandt/pathtracer/pkg/primitive"
)

// earthTexturePath is the default location of the earthmap texture image;
// scenes wanting a different image build the scene package around their
// own loader call instead.
const earthTexturePath = "assets/earthmap.jpg"

// buildEarth wraps a single sphere with an equirectangular earth texture.
func buildEarth(imageWidth int, aspectRatio float64) (*Scene, error) {
	tex, err := loaders.LoadImage(earthTexturePath)
	if err != nil {
		return nil, fmt.Errorf("scene: earth: %w", err)
	}

	cam := camera.NewCamera(
		core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		30, aspectRatio, 0, 10, 0, 1,
	)

	globe := primitive.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertian(tex))

	return &Scene{
		Camera:     cam,
		World:      bvhOf([]primitive.Hittable{globe}),
		Background: integrator.SkyBackground{Horizon: core.NewVec3(1, 1, 1), Zenith: core.NewVec3(0.5, 0.7, 1.0)},
	}, nil
}
