package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-csg-raytracer/pkg/core"
)

// intensity is the displayable range of a gamma-corrected channel
var intensity = core.NewInterval(0.000, 0.999)

// PixelBuffer holds averaged linear colors, one per pixel, in row-major order
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewPixelBuffer creates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color at column x of row y
func (pb *PixelBuffer) At(x, y int) core.Vec3 {
	return pb.Pixels[y*pb.Width+x]
}

// Set stores the linear color at column x of row y
func (pb *PixelBuffer) Set(x, y int, c core.Vec3) {
	pb.Pixels[y*pb.Width+x] = c
}

// Image converts the buffer to 8-bit RGBA with gamma 2 correction
func (pb *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pb.At(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = finiteChannels(colorVec).GammaCorrect(2.0).Clamp(intensity)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}

// finiteChannels replaces NaN and infinite components with zero
func finiteChannels(c core.Vec3) core.Vec3 {
	if c.IsFinite() {
		return c
	}
	clean := func(x float64) float64 {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	}
	return core.NewVec3(clean(c.X), clean(c.Y), clean(c.Z))
}
