package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const referenceScene = "reference"

type options struct {
	scene      string
	out        string
	format     string
	width      int
	height     int
	antialias  bool
	workers    int
	tileSize   int
	sequential bool
	saveConfig string
	list       bool
	help       bool

	set map[string]bool // Flags given explicitly on the command line
}

func parseOptions(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.scene, "scene", referenceScene, "Scene: 'reference', a scene ID from -list, or a path to a YAML scene file")
	fs.StringVar(&opts.out, "out", "output/render.ppm", "Output image path")
	fs.StringVar(&opts.format, "format", "", "Output format: 'ppm' or 'png' (default: from -out extension)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (default: from scene)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (default: from scene)")
	fs.BoolVar(&opts.antialias, "antialias", true, "Average 4 sub-pixel samples per pixel")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = one per CPU)")
	fs.IntVar(&opts.tileSize, "tile", renderer.DefaultTileSize, "Tile edge length in pixels")
	fs.BoolVar(&opts.sequential, "sequential", false, "Render on a single goroutine")
	fs.StringVar(&opts.saveConfig, "save-config", "", "Write the effective scene configuration to this YAML file")
	fs.BoolVar(&opts.list, "list", false, "List scene files in the scenes directory")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, fs, nil
}

// loadConfig resolves the -scene argument to a configuration
func loadConfig(sceneArg string) (*config.Config, error) {
	if sceneArg == referenceScene {
		return config.DefaultConfig(), nil
	}
	if sceneArg == "" {
		return nil, errors.New("empty scene name")
	}

	path, err := config.ResolveScene(sceneArg, config.FindScenesDir(config.DefaultScenesDirs))
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(path)
}

func listScenes() error {
	scenes, err := config.ListScenes(config.FindScenesDir(config.DefaultScenesDirs))
	if err != nil {
		return err
	}

	fmt.Printf("  %-14s - Built-in reference scene\n", referenceScene)
	for _, s := range scenes {
		description := s.Description
		if description == "" {
			description = s.Name
		}
		fmt.Printf("  %-14s - %s\n", s.ID, description)
	}
	return nil
}

// applyOverrides copies explicitly set flags over the configuration
func applyOverrides(cfg *config.Config, opts *options) {
	if opts.set["width"] {
		cfg.Render.Width = opts.width
	}
	if opts.set["height"] {
		cfg.Render.Height = opts.height
	}
	if opts.set["antialias"] {
		cfg.Render.Antialias = opts.antialias
	}
	if opts.set["workers"] {
		cfg.Render.Workers = opts.workers
	}
	if opts.set["tile"] {
		cfg.Render.TileSize = opts.tileSize
	}
}

func run(opts *options, logger core.Logger) error {
	cfg, err := loadConfig(opts.scene)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}
	applyOverrides(cfg, opts)

	if opts.saveConfig != "" {
		if err := config.SaveConfig(cfg, opts.saveConfig); err != nil {
			return err
		}
		logger.Printf("Configuration saved as %s", opts.saveConfig)
	}

	s, err := cfg.BuildScene()
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	format := output.FormatFromPath(opts.out)
	if opts.format != "" {
		if format, err = output.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	logger.Printf("Rendering %s scene: %d spheres, %d lights", opts.scene, s.GetPrimitiveCount(), len(s.Lights))

	var grid renderer.Grid
	var stats renderer.RenderStats
	if opts.sequential {
		grid, stats, err = renderer.RenderSequential(s, cfg.Render.Antialias, logger)
	} else {
		grid, stats, err = renderer.Render(context.Background(), s, cfg.RenderConfig(), logger)
	}
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	logger.Printf("%.0f samples/sec", stats.SamplesPerSecond())

	if err := output.Save(opts.out, format, grid); err != nil {
		return err
	}

	logger.Printf("Render saved as %s", opts.out)
	return nil
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	if err := listScenes(); err != nil {
		fmt.Printf("  (failed to list scenes: %v)\n", err)
	}
	fmt.Println("  <file.yaml>    - Any scene file; start from one written with -save-config")
}

func main() {
	opts, fs, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if opts.help {
		printHelp(fs)
		return
	}

	if opts.list {
		if err := listScenes(); err != nil {
			log.Printf("Error: %v", err)
			os.Exit(1)
		}
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if err := run(opts, logger); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
