// Package camera derives a thin-lens orthonormal camera from a handful of
// placement and optics parameters, then samples primary rays through it.
package camera

import (
	"math"
	"math/rand"

	"github.com/kbrandt/pathtracer/pkg/core"
)

// Camera holds the eye position, the derived viewport basis and lens
// radius, and the shutter interval used to sample primary rays; the other
// construction inputs are not stored on it.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// NewCamera derives a Camera from the nine construction parameters: the
// eye position, look-at target, up direction, vertical field of view in
// degrees, aspect ratio, aperture, focus distance, and the shutter's open
// and close times.
func NewCamera(lookFrom, lookAt, vup core.Vec3, vfovDeg, aspect, aperture, focusDist, shutterOpen, shutterClose float64) *Camera {
	vpWidth, vpHeight := viewportWidthHeight(vfovDeg, aspect)

	w := lookFrom.Subtract(lookAt).Unit()
	u := vup.Cross(w).Unit()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDist * vpWidth)
	vertical := v.Multiply(focusDist * vpHeight)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		shutterOpen:     shutterOpen,
		shutterClose:    shutterClose,
	}
}

func viewportWidthHeight(vfovDeg, aspect float64) (width, height float64) {
	theta := vfovDeg * math.Pi / 180
	h := math.Tan(theta / 2)
	height = 2 * h
	width = aspect * height
	return width, height
}

// GetRay samples a primary ray through normalized viewport coordinates
// (s, t), offsetting the origin by a random point on the lens disk and
// carrying a uniformly sampled shutter time for motion blur.
func (c *Camera) GetRay(s, t float64, rnd *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rnd).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.shutterOpen + rnd.Float64()*(c.shutterClose-c.shutterOpen)

	return core.NewRayAtTime(c.origin.Add(offset), direction, time)
}
