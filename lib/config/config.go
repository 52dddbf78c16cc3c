package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kevincpp/trigl/lib/utils"

	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window         *WindowCfg `yaml:"window"`
	ClearColour    string     `yaml:"clear_colour"`
	TriangleColour string     `yaml:"triangle_colour"`
	Api            *ApiCfg    `yaml:"api"`
}

type WindowCfg struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// VSync is tri-state: nil leaves the swap interval at the
	// platform default.
	VSync *bool `yaml:"vsync"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}

// Default is the configuration used when no config file is given: an
// 800x600 window with a black clear colour. TriangleColour stays
// empty, which means the exact orange baked into the fragment source;
// hex colours cannot express it (0.5 is not a hex byte).
func Default() *Config {
	return &Config{
		Window: &WindowCfg{
			Width:  800,
			Height: 600,
			Title:  "trigl",
		},
		ClearColour: "#000000ff",
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	m := yaml.NewDecoder(f)

	// decode on top of the defaults so partial configs work
	cfg := Default()
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window == nil {
		return fmt.Errorf("a window section should be defined")
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("please set a window title")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if c.TriangleColour != "" && !utils.ColourValidate(c.TriangleColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.TriangleColour)
	}
	return nil
}

// Overrides lists the settings a config changes from the built-in
// defaults.
func (c *Config) Overrides() []string {
	def := Default()
	var out []string
	if c.Window != nil {
		if c.Window.Width != def.Window.Width || c.Window.Height != def.Window.Height {
			out = append(out, "window.size")
		}
		if c.Window.Title != def.Window.Title {
			out = append(out, "window.title")
		}
		if c.Window.VSync != nil {
			out = append(out, "window.vsync")
		}
	}
	if c.ClearColour != def.ClearColour {
		out = append(out, "clear_colour")
	}
	if c.TriangleColour != "" {
		out = append(out, "triangle_colour")
	}
	if c.Api != nil {
		out = append(out, "api")
	}
	return out
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d)\n", c.Window.Title, c.Window.Width, c.Window.Height))

	b.WriteString("\nColours:\n")
	b.WriteString(fmt.Sprintf("  clear:    %s\n", c.ClearColour))
	triangle := c.TriangleColour
	if triangle == "" {
		triangle = "(built-in orange)"
	}
	b.WriteString(fmt.Sprintf("  triangle: %s\n", triangle))

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}
	return b.String()
}
