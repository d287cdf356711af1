package renderer

import (
	"errors"
	"sync"
	"time"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/integrator"
)

// ErrAlreadyRendered is returned when Render is called more than once
var ErrAlreadyRendered = errors.New("raytracer has already rendered")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-row random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// RenderState is the lifecycle stage of a Raytracer
type RenderState int

const (
	StateInitialized RenderState = iota
	StateRendering
	StateDone
)

func (s RenderState) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRendering:
		return "rendering"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Raytracer renders one image of a scene. It is single use: the camera is set
// up on construction and Render may be called exactly once.
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	sampling   SamplingConfig
	logger     core.Logger

	mu    sync.Mutex
	state RenderState
}

// NewRaytracer creates a raytracer for the given world. Sample counts below
// one are raised to one.
func NewRaytracer(world geometry.Hittable, cameraConfig CameraConfig, sampling SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	sampling.SamplesPerPixel = max(sampling.SamplesPerPixel, 1)

	return &Raytracer{
		world:      world,
		camera:     NewCamera(cameraConfig),
		integrator: integrator.NewPathTracingIntegrator(sampling.MaxDepth),
		sampling:   sampling,
		logger:     logger,
		state:      StateInitialized,
	}
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// SetIntegrator replaces the light transport algorithm. It has no effect once
// rendering has started.
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.state == StateInitialized {
		rt.integrator = i
	}
}

// State returns the current lifecycle stage
func (rt *Raytracer) State() RenderState {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.state
}

// Render shades every pixel in parallel and returns the buffer of linear colors
func (rt *Raytracer) Render() (*PixelBuffer, RenderStats, error) {
	rt.mu.Lock()
	if rt.state != StateInitialized {
		rt.mu.Unlock()
		return nil, RenderStats{}, ErrAlreadyRendered
	}
	rt.state = StateRendering
	rt.mu.Unlock()

	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	buffer := NewPixelBuffer(width, height)

	pool := NewWorkerPool(rt, height, rt.sampling.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d workers\n",
		width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, pool.GetNumWorkers())

	pool.Start()
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Buffer: buffer})
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.sampling.SamplesPerPixel,
		MaxDepth:        rt.sampling.MaxDepth,
		NumWorkers:      pool.GetNumWorkers(),
	}

	// Progress is reported from this goroutine only
	nextReport := 10
	for completed := 1; completed <= height; completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples

		percent := 100 * completed / height
		if percent >= nextReport {
			rt.logger.Printf("Percent complete: %d%%\n", percent)
			nextReport = (percent/10 + 1) * 10
		}
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	rt.logger.Printf("Done in %v\n", stats.Duration)

	rt.mu.Lock()
	rt.state = StateDone
	rt.mu.Unlock()

	return buffer, stats, nil
}

// renderRow shades every pixel of one row into the buffer and returns the
// number of samples taken
func (rt *Raytracer) renderRow(row int, buffer *PixelBuffer, sampler core.Sampler) int {
	samples := 0
	for col := 0; col < buffer.Width; col++ {
		var pixel PixelStats
		for s := 0; s < rt.sampling.SamplesPerPixel; s++ {
			ray := rt.camera.GetRay(row, col, sampler)
			pixel.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
		}
		buffer.Set(col, row, pixel.GetColor())
		samples += pixel.SampleCount
	}
	return samples
}
