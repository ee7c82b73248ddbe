package scene

import (
	"math"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/vmath"
)

const (
	nearPlane   = 0.1
	dragRadians = 0.005 // per pixel
)

var worldUp = vmath.V3(0, 1, 0)

// Camera orbits a target at fixed distance. Azimuth and polar angle are
// measured the usual spherical way, polar from +Y.
type Camera struct {
	Target   vmath.Vec3
	Distance float64
	Azimuth  float64
	Polar    float64
	FOV      float64 // vertical, degrees

	// Viewport in screen pixels
	X, Y, W, H float64
}

// NewCamera places the camera like the site's hero canvas: at (0, 2, 8)
// looking at the origin.
func NewCamera(w, h float64) *Camera {
	horiz := math.Sqrt(config.CameraDistance*config.CameraDistance - config.CameraHeight*config.CameraHeight)
	return &Camera{
		Distance: config.CameraDistance,
		Azimuth:  0,
		Polar:    math.Atan2(horiz, config.CameraHeight),
		FOV:      config.CameraFOV,
		W:        w,
		H:        h,
	}
}

// Position is the eye in world space.
func (c *Camera) Position() vmath.Vec3 {
	sp, cp := math.Sincos(c.Polar)
	sa, ca := math.Sincos(c.Azimuth)
	return c.Target.Add(vmath.V3(c.Distance*sp*sa, c.Distance*cp, c.Distance*sp*ca))
}

// Forward is the unit view direction.
func (c *Camera) Forward() vmath.Vec3 {
	return c.Target.Sub(c.Position()).Normalize()
}

// Drag orbits the camera by a cursor movement in pixels. The polar angle
// stays within the configured limits and there is no zoom or pan.
func (c *Camera) Drag(dx, dy float64) {
	c.Azimuth -= dx * dragRadians
	c.Polar = vmath.Clamp(c.Polar-dy*dragRadians, config.MinPolarAngle, config.MaxPolarAngle)
}

func (c *Camera) focal() float64 {
	return (c.H / 2) / math.Tan(c.FOV*math.Pi/360)
}

// Project maps p to screen coordinates. depth is the distance along the view
// axis; ok is false for points behind the near plane.
func (c *Camera) Project(p vmath.Vec3) (x, y, depth float64, ok bool) {
	eye := c.Position()
	fwd := c.Target.Sub(eye).Normalize()
	right := fwd.Cross(worldUp).Normalize()
	up := right.Cross(fwd)

	d := p.Sub(eye)
	depth = d.Dot(fwd)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := c.focal() / depth
	x = c.X + c.W/2 + d.Dot(right)*f
	y = c.Y + c.H/2 - d.Dot(up)*f
	return x, y, depth, true
}

// PixelsPerUnit is the screen size of one world unit at depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth < nearPlane {
		depth = nearPlane
	}
	return c.focal() / depth
}
