package renderer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned for a resolution preset name that does not exist
var ErrUnknownPreset = errors.New("unknown resolution preset")

type resolution struct {
	width, height int
}

var presets = map[string]resolution{
	"ld":    {320, 240},   // 4:3
	"sd":    {640, 480},   // 4:3
	"hd":    {1280, 720},  // 16:9
	"fhd":   {1920, 1080}, // 16:9
	"qhd":   {2560, 1440}, // 16:9
	"uhd":   {3840, 2160}, // 16:9
	"dci4k": {4096, 2160}, // 256:135 cinema
}

// Preset returns the dimensions of a named resolution preset
func Preset(name string) (width, height int, err error) {
	res, ok := presets[strings.ToLower(name)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return res.width, res.height, nil
}

// PresetNames returns all preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithPreset returns a copy of the config with explicit dimensions from a preset
func (c CameraConfig) WithPreset(name string) (CameraConfig, error) {
	width, height, err := Preset(name)
	if err != nil {
		return c, err
	}
	c.Width = width
	c.Height = height
	return c, nil
}
