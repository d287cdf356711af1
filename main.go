package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-csg-raytracer/pkg/loaders"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
	"github.com/df07/go-csg-raytracer/pkg/scene"
)

// options holds the parsed command line. Zero values mean "not given".
type options struct {
	scene      string
	preset     string
	width      int
	height     int
	samples    int
	depth      int
	workers    int
	seed       int64
	configPath string
	output     string
	help       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stdout)
	opts, err := parseFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.help {
		printHelp(fs, stdout)
		return nil
	}

	fmt.Fprintln(stdout, "Starting CSG Raytracer...")

	selectedScene, fileCfg, err := createScene(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Using %s scene...\n", selectedScene.Name)

	raytracer := selectedScene.NewRaytracer(renderer.NewWriterLogger(stdout))
	buffer, stats, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Fprintf(stdout, "Render completed in %v\n", stats.Duration)
	fmt.Fprintf(stdout, "Samples per pixel: %.1f (%d total)\n", stats.AverageSamples(), stats.TotalSamples)

	filename := outputPath(opts, fileCfg, selectedScene.Name, time.Now())
	if err := loaders.SavePNG(filename, buffer.Image()); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Render saved as %s\n", filename)
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{}
	fs.StringVar(&opts.scene, "scene", "", "Scene name: "+strings.Join(scene.Names(), ", ")+" (default \"default\")")
	fs.StringVar(&opts.preset, "preset", "", "Resolution preset: "+strings.Join(renderer.PresetNames(), ", "))
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (overrides preset)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (overrides preset)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed")
	fs.StringVar(&opts.configPath, "config", "", "JSON render configuration file")
	fs.StringVar(&opts.output, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// createScene builds the scene and layers configuration on top of its
// defaults: config file first, then command line flags.
func createScene(opts *options) (*scene.Scene, *loaders.RenderConfig, error) {
	fileCfg := &loaders.RenderConfig{}
	if opts.configPath != "" {
		var err error
		fileCfg, err = loaders.LoadRenderConfig(opts.configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	sceneName := firstNonEmpty(opts.scene, fileCfg.Scene, "default")

	flagCamera := renderer.CameraConfig{}
	if opts.preset != "" {
		var err error
		flagCamera, err = flagCamera.WithPreset(opts.preset)
		if err != nil {
			return nil, nil, err
		}
	}
	flagCamera = renderer.MergeCameraConfig(flagCamera, renderer.CameraConfig{
		Width:  opts.width,
		Height: opts.height,
	})

	selectedScene, err := scene.New(sceneName)
	if err != nil {
		return nil, nil, err
	}
	selectedScene.CameraConfig = renderer.MergeCameraConfig(fileCfg.ApplyCamera(selectedScene.CameraConfig), flagCamera)

	sampling := renderer.MergeSamplingConfig(selectedScene.SamplingConfig, fileCfg.SamplingOverrides())
	selectedScene.SamplingConfig = renderer.MergeSamplingConfig(sampling, renderer.SamplingConfig{
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		NumWorkers:      opts.workers,
		Seed:            opts.seed,
	})

	return selectedScene, fileCfg, nil
}

// outputPath picks the PNG destination: -out, then the config file, then a
// timestamped file under output/<scene>/
func outputPath(opts *options, fileCfg *loaders.RenderConfig, sceneName string, now time.Time) string {
	if path := firstNonEmpty(opts.output, fileCfg.Output); path != "" {
		return path
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "CSG Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-13s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings are applied in order: scene defaults, -config file, flags.")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
