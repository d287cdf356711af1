package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// Vec3Cfg is a point or direction written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

// Vec3 converts the array to a vector
func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// RenderConfig is the on-disk render configuration. Zero or missing counts and
// sizes leave the scene's own settings in place. Positions and the lens
// settings are pointers so an explicit zero, such as "defocusAngle": 0 or
// "lookFrom": [0, 0, 0], still overrides the scene.
type RenderConfig struct {
	Scene           string   `json:"scene,omitempty"`
	Preset          string   `json:"preset,omitempty"`
	Width           int      `json:"width,omitempty"`
	Height          int      `json:"height,omitempty"`
	SamplesPerPixel int      `json:"samplesPerPixel,omitempty"`
	MaxDepth        int      `json:"maxDepth,omitempty"`
	VFov            float64  `json:"vfov,omitempty"`
	LookFrom        *Vec3Cfg `json:"lookFrom,omitempty"`
	LookAt          *Vec3Cfg `json:"lookAt,omitempty"`
	Up              *Vec3Cfg `json:"up,omitempty"`
	DefocusAngle    *float64 `json:"defocusAngle,omitempty"`
	FocusDistance   *float64 `json:"focusDistance,omitempty"`
	Workers         int      `json:"workers,omitempty"`
	Seed            int64    `json:"seed,omitempty"`
	Output          string   `json:"output,omitempty"`
}

// LoadRenderConfig reads a JSON render configuration. Unknown keys and
// unknown presets are errors.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg RenderConfig
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Preset != "" {
		if _, _, err := renderer.Preset(cfg.Preset); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// ApplyCamera returns base with the camera fields set by the config. A preset
// supplies the dimensions; explicit width and height win over it.
func (c *RenderConfig) ApplyCamera(base renderer.CameraConfig) renderer.CameraConfig {
	camera := base
	if c.Preset != "" {
		// Validated on load
		camera, _ = camera.WithPreset(c.Preset)
	}

	camera = renderer.MergeCameraConfig(camera, renderer.CameraConfig{
		Width:  c.Width,
		Height: c.Height,
		VFov:   c.VFov,
	})

	if c.LookFrom != nil {
		camera.LookFrom = c.LookFrom.Vec3()
	}
	if c.LookAt != nil {
		camera.LookAt = c.LookAt.Vec3()
	}
	if c.Up != nil {
		camera.Up = c.Up.Vec3()
	}
	if c.DefocusAngle != nil {
		camera.DefocusAngle = *c.DefocusAngle
	}
	if c.FocusDistance != nil {
		camera.FocusDistance = *c.FocusDistance
	}
	return camera
}

// SamplingOverrides returns the sampling fields set by the config
func (c *RenderConfig) SamplingOverrides() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		NumWorkers:      c.Workers,
		Seed:            c.Seed,
	}
}
