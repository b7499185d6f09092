// The config package loads the demo's tunables from an optional YAML file.
// A missing file is not an error; every field starts from the defaults and
// the file only overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	MSAA   bool   `yaml:"msaa"`
}

type Camera struct {
	Accel float32 `yaml:"accel"`
	Drag  float32 `yaml:"drag"`
}

type Player struct {
	Accel float32 `yaml:"accel"`
	Drag  float32 `yaml:"drag"`
}

type Renderer struct {
	// InstanceCapacity is the initial instance buffer capacity. The buffer
	// grows geometrically past it and never shrinks within a session.
	InstanceCapacity int        `yaml:"instance_capacity"`
	ClearColor       [4]float32 `yaml:"clear_color"`
}

type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Player   Player   `yaml:"player"`
	Renderer Renderer `yaml:"renderer"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "pathrs",
			Width:  1400,
			Height: 900,
			VSync:  true,
			MSAA:   true,
		},
		Camera: Camera{
			Accel: 1.1125,
			Drag:  0.8925,
		},
		Player: Player{
			Accel: 0.6975,
			Drag:  0.825,
		},
		Renderer: Renderer{
			InstanceCapacity: 64,
			ClearColor:       [4]float32{0.1, 0.09, 0.11, 1},
		},
	}
}

// Load reads path over the defaults. A missing file returns the defaults;
// an unreadable or malformed file is an error.
func Load(path string) (Config, error) {

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return cfg, nil
}
