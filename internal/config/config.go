package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle             = "3D Fitness Landscape of Proteins with Annotations and Process Arrows"
	DefaultSurfaceColorscale = "Viridis"
	DefaultMarkerColorscale  = "RdYlBu"
	DefaultMarkerSize        = 10
	DefaultPathColor         = "blue"
	DefaultPathWidth         = 2
	DefaultPathDash          = "dash"
	DefaultPathMarkerSize    = 5
	DefaultColorbarTicks     = 5
	DefaultCameraEye         = 1.5
	DefaultTheme             = "cyberpunk"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	Title             string       `yaml:"title"`
	SurfaceColorscale string       `yaml:"surface_colorscale"`
	MarkerColorscale  string       `yaml:"marker_colorscale"`
	MarkerSize        float64      `yaml:"marker_size"`
	Path              PathConfig   `yaml:"path"`
	ColorbarTicks     int          `yaml:"colorbar_ticks"`
	Camera            CameraConfig `yaml:"camera"`
	Pairs             []string     `yaml:"pairs"`
	Theme             string       `yaml:"theme"`
	Output            string       `yaml:"output"`
}

type PathConfig struct {
	Color      string  `yaml:"color"`
	Width      float64 `yaml:"width"`
	Dash       string  `yaml:"dash"`
	MarkerSize float64 `yaml:"marker_size"`
}

// CameraConfig is the viewing eye position, in the unit cube of the scene.
type CameraConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:             DefaultTitle,
		SurfaceColorscale: DefaultSurfaceColorscale,
		MarkerColorscale:  DefaultMarkerColorscale,
		MarkerSize:        DefaultMarkerSize,
		Path: PathConfig{
			Color:      DefaultPathColor,
			Width:      DefaultPathWidth,
			Dash:       DefaultPathDash,
			MarkerSize: DefaultPathMarkerSize,
		},
		ColorbarTicks: DefaultColorbarTicks,
		Camera:        CameraConfig{X: DefaultCameraEye, Y: DefaultCameraEye, Z: DefaultCameraEye},
		Theme:         DefaultTheme,
	}
}

// Load reads a yaml file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) Validate() error {
	switch {
	case c.ColorbarTicks < 2:
		return errors.Join(ErrInvalid, errors.New("colorbar_ticks must be at least 2"))
	case c.MarkerSize <= 0 || c.Path.MarkerSize <= 0:
		return errors.Join(ErrInvalid, errors.New("marker sizes must be positive"))
	case c.Path.Width <= 0:
		return errors.Join(ErrInvalid, errors.New("path width must be positive"))
	case c.Camera == (CameraConfig{}):
		return errors.Join(ErrInvalid, errors.New("camera eye cannot be the origin"))
	}
	return nil
}

// ApplyPreset replaces the camera eye with a named preset.
func (c *Config) ApplyPreset(name string) error {
	eye, ok := CameraPresets[name]
	if !ok {
		return ErrUnknownPreset
	}
	c.Camera = eye
	return nil
}
