package camera

import "github.com/kbrandt/pathtracer/pkg/core"

// Builder fluently assembles a Camera's nine construction parameters, for
// scene builders that only want to override a handful of defaults rather
// than spell out every NewCamera argument.
type Builder struct {
	lookFrom     core.Point3
	lookAt       core.Point3
	vup          core.Vec3
	vfovDeg      float64
	aspect       float64
	aperture     float64
	focusDist    float64
	shutterOpen  float64
	shutterClose float64
}

// NewCameraBuilder returns a Builder seeded with reasonable defaults: a
// camera at the origin looking down -Z, vup = +Y, a 90-degree vertical
// field of view, an in-focus pinhole lens, and a closed shutter.
func NewCameraBuilder() *Builder {
	return &Builder{
		lookFrom:  core.NewVec3(0, 0, 0),
		lookAt:    core.NewVec3(0, 0, -1),
		vup:       core.NewVec3(0, 1, 0),
		vfovDeg:   90,
		aspect:    16.0 / 9.0,
		focusDist: 1,
	}
}

// LookFrom sets the camera's eye position.
func (b *Builder) LookFrom(p core.Point3) *Builder {
	b.lookFrom = p
	return b
}

// LookAt sets the point the camera is aimed at.
func (b *Builder) LookAt(p core.Point3) *Builder {
	b.lookAt = p
	return b
}

// UpDirection sets the camera's up vector.
func (b *Builder) UpDirection(v core.Vec3) *Builder {
	b.vup = v
	return b
}

// VerticalFOV sets the vertical field of view in degrees.
func (b *Builder) VerticalFOV(degrees float64) *Builder {
	b.vfovDeg = degrees
	return b
}

// AspectRatio sets the viewport's width/height ratio.
func (b *Builder) AspectRatio(ratio float64) *Builder {
	b.aspect = ratio
	return b
}

// Aperture sets the lens aperture; combined with FocusDistance this
// produces depth-of-field blur for objects off the focal plane.
func (b *Builder) Aperture(aperture float64) *Builder {
	b.aperture = aperture
	return b
}

// FocusDistance sets the distance from the camera to the plane of
// perfect focus.
func (b *Builder) FocusDistance(dist float64) *Builder {
	b.focusDist = dist
	return b
}

// ShutterInterval sets the camera's open/close shutter times, sampled
// uniformly per ray to drive motion blur on primitives that move within
// the interval.
func (b *Builder) ShutterInterval(open, close float64) *Builder {
	b.shutterOpen = open
	b.shutterClose = close
	return b
}

// Build derives a Camera from the accumulated parameters.
func (b *Builder) Build() *Camera {
	return NewCamera(b.lookFrom, b.lookAt, b.vup, b.vfovDeg, b.aspect, b.aperture, b.focusDist, b.shutterOpen, b.shutterClose)
}
