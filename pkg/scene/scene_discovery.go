package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by New
	DisplayName string // Name for listings
	Description string // Short description
}

type sceneEntry struct {
	info    SceneInfo
	builder func(...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		SceneInfo{"default", "Default", "Diffuse sphere on a ground plane"},
		NewDefaultScene,
	},
	"materials": {
		SceneInfo{"materials", "Materials", "Glass, diffuse and metal spheres with depth of field"},
		NewMaterialsScene,
	},
	"cones": {
		SceneInfo{"cones", "Cones", "Conical cups built from cone intersections inside glass shells"},
		NewConeScene,
	},
	"intersection": {
		SceneInfo{"intersection", "Intersection", "Plateau, clipped cone and lens built from volume intersections"},
		NewIntersectionScene,
	},
	"weekend": {
		SceneInfo{"weekend", "Weekend", "Field of random spheres around three large ones"},
		NewWeekendScene,
	},
}

// New builds the named scene with optional camera overrides
func New(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	entry, ok := builtinScenes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return entry.builder(cameraOverrides...), nil
}

// Names returns every built-in scene name in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, builtinScenes[name].info)
	}
	return scenes
}
