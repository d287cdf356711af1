package renderer

import (
	"math"

	"github.com/df07/go-csg-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels (0 = derive from AspectRatio)
	AspectRatio   float64   // Width / height, used when Height is 0
	VFov          float64   // Vertical field of view in degrees
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	DefocusAngle  float64   // Aperture cone angle in degrees (0 = pinhole)
	FocusDistance float64   // Distance to the plane of perfect focus (0 = |LookAt - LookFrom|)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90,
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != zero {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// ImageSize resolves the output dimensions, clamping both to at least one pixel
func (c CameraConfig) ImageSize() (width, height int) {
	width = max(c.Width, 1)
	height = c.Height
	if height == 0 && c.AspectRatio > 0 {
		height = int(float64(width) / c.AspectRatio)
	}
	return width, max(height, 1)
}

// Camera generates primary rays through a viewport with optional depth of field
type Camera struct {
	config       CameraConfig
	width        int
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // Center of the upper-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel on the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera builds the camera frame and viewport from the configuration
func NewCamera(config CameraConfig) *Camera {
	width, height := config.ImageSize()

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.LookFrom).Length()
	}

	theta := core.DegreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	w, u, v := cameraBasis(config.LookFrom, config.LookAt, config.Up)

	// Viewport edges run right along u and down along -v
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       config.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// cameraBasis builds the orthonormal frame with w pointing back from lookAt.
// A degenerate view direction falls back to -z, and an up vector parallel to
// it is replaced by whichever world axis is least aligned with w.
func cameraBasis(lookFrom, lookAt, up core.Vec3) (w, u, v core.Vec3) {
	w = lookFrom.Subtract(lookAt)
	if w.NearZero() {
		w = core.NewVec3(0, 0, 1)
	}
	w = w.Normalize()

	side := up.Cross(w)
	if side.LengthSquared() < 1e-12*up.LengthSquared() || up.NearZero() {
		side = leastAlignedAxis(w).Cross(w)
	}
	u = side.Normalize()
	v = w.Cross(u)
	return w, u, v
}

func leastAlignedAxis(w core.Vec3) core.Vec3 {
	x, y, z := math.Abs(w.X), math.Abs(w.Y), math.Abs(w.Z)
	switch {
	case y <= x && y <= z:
		return core.NewVec3(0, 1, 0)
	case z <= x:
		return core.NewVec3(0, 0, 1)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns a ray through a jittered point of pixel (row, col). With a
// positive defocus angle the origin is sampled from the lens disk.
func (c *Camera) GetRay(row, col int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(col) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(row) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
