package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	ErrBadVector       = errors.New("vector must have exactly 3 components")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrInvalidMaterial = errors.New("invalid material")
	ErrInvalidSphere   = errors.New("invalid sphere")
)

// Config describes a scene and how to render it
type Config struct {
	Render    RenderSettings            `yaml:"render"`
	Camera    CameraConfig              `yaml:"camera"`
	Ambient   Vector                    `yaml:"ambient,flow"`
	Materials map[string]MaterialConfig `yaml:"materials"`
	Lights    []LightConfig             `yaml:"lights"`
	Spheres   []SphereConfig            `yaml:"spheres"`
}

type RenderSettings struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Antialias bool `yaml:"antialias"`
	TileSize  int  `yaml:"tile_size"`
	Workers   int  `yaml:"workers"` // 0 means one per CPU
}

type CameraConfig struct {
	Position Vector  `yaml:"position,flow"`
	View     Vector  `yaml:"view,flow"`
	Up       Vector  `yaml:"up,flow"`
	FOV      float32 `yaml:"fov"` // Degrees
}

type MaterialConfig struct {
	Diffuse   Vector  `yaml:"diffuse,flow"`
	Specular  Vector  `yaml:"specular,flow"`
	Shininess float32 `yaml:"shininess"`
	Mirror    float32 `yaml:"mirror"`
}

type LightConfig struct {
	Position Vector `yaml:"position,flow"`
	Color    Vector `yaml:"color,flow"`
}

type SphereConfig struct {
	Center   Vector  `yaml:"center,flow"`
	Radius   float32 `yaml:"radius"`
	Material string  `yaml:"material"`
}

// Vector is a 3-component value written as a YAML sequence: [x, y, z]
type Vector core.Vec3

func (v *Vector) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var components []float32
	if err := unmarshal(&components); err != nil {
		return fmt.Errorf("%w: %v", ErrBadVector, err)
	}
	if len(components) != 3 {
		return fmt.Errorf("%w: got %d", ErrBadVector, len(components))
	}
	*v = Vector{X: components[0], Y: components[1], Z: components[2]}
	return nil
}

func (v Vector) MarshalYAML() (interface{}, error) {
	return []float32{v.X, v.Y, v.Z}, nil
}

// Vec3 converts the vector to the core vector type
func (v Vector) Vec3() core.Vec3 {
	return core.Vec3(v)
}

func vec(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// DefaultConfig describes the reference scene rendered with antialiasing.
// It must stay equal to scenes/reference.yaml and scene.NewReferenceScene.
func DefaultConfig() *Config {
	specular := vec(0.5, 0.7, 0.5)

	return &Config{
		Render: RenderSettings{
			Width:     1024,
			Height:    1024,
			Antialias: true,
			TileSize:  renderer.DefaultTileSize,
			Workers:   0, // Auto-detect CPU count
		},
		Camera: CameraConfig{
			Position: vec(0, 0, 800),
			View:     vec(0, 0, -1),
			Up:       vec(0, 1, 0),
			FOV:      45,
		},
		Ambient: vec(0.3, 0.3, 0.3),
		Materials: map[string]MaterialConfig{
			"green":  {Diffuse: vec(0.7, 1.0, 0.7), Specular: specular, Shininess: 25, Mirror: 0.3},
			"grey":   {Diffuse: vec(0.5, 0.5, 0.5), Specular: specular, Shininess: 25, Mirror: 0.3},
			"orange": {Diffuse: vec(1.0, 0.6, 0.1), Specular: specular, Shininess: 25, Mirror: 0.3},
		},
		Lights: []LightConfig{
			{Position: vec(-100, 150, 400), Color: vec(0.7, 0.7, 0.7)},
			{Position: vec(400, 100, 150), Color: vec(0.7, 0.0, 0.7)},
		},
		Spheres: []SphereConfig{
			{Center: vec(0, 0, -400), Radius: 100, Material: "green"},
			{Center: vec(200, 50, -100), Radius: 150, Material: "green"},
			{Center: vec(0, -1200, -500), Radius: 1000, Material: "grey"},
			{Center: vec(-100, 25, -300), Radius: 50, Material: "orange"},
			{Center: vec(0, 100, -250), Radius: 25, Material: "green"},
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Lists present in the file
// replace the default lists; materials are merged by name. On error the
// defaults are returned alongside it.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", filePath, err)
	}

	return config, nil
}

// SaveConfig writes the configuration as YAML
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// BuildScene converts the configuration into a validated scene
func (c *Config) BuildScene() (*scene.Scene, error) {
	materials := make(map[string]geometry.Material, len(c.Materials))
	for name, m := range c.Materials {
		if m.Shininess < 0 {
			return nil, fmt.Errorf("material %q: shininess %f: %w", name, m.Shininess, ErrInvalidMaterial)
		}
		materials[name] = geometry.NewMaterial(m.Diffuse.Vec3(), m.Specular.Vec3(), m.Shininess, m.Mirror)
	}

	s := &scene.Scene{
		Ambient: c.Ambient.Vec3(),
		Camera:  c.Camera.Position.Vec3(),
		View:    c.Camera.View.Vec3(),
		Up:      c.Camera.Up.Vec3(),
		Width:   c.Render.Width,
		Height:  c.Render.Height,
		FOV:     c.Camera.FOV,
	}

	for _, l := range c.Lights {
		s.AddLight(l.Position.Vec3(), l.Color.Vec3())
	}

	for i, sp := range c.Spheres {
		mat, ok := materials[sp.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %q: %w", i, sp.Material, ErrUnknownMaterial)
		}
		if !(sp.Radius > 0) {
			return nil, fmt.Errorf("sphere %d: radius %f: %w", i, sp.Radius, ErrInvalidSphere)
		}
		s.AddSphere(sp.Center.Vec3(), sp.Radius, mat)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// RenderConfig returns the renderer settings
func (c *Config) RenderConfig() renderer.Config {
	return renderer.Config{
		TileSize:   c.Render.TileSize,
		NumWorkers: c.Render.Workers,
		Antialias:  c.Render.Antialias,
	}
}
