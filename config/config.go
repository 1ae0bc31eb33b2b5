package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Title       string  `yaml:"title"`
	TileSize    float64 `yaml:"tile_size"`
	WindowScale int     `yaml:"window_scale"`
	ShowFPS     bool    `yaml:"show_fps"`
	Colors      Palette `yaml:"colors"`
	Levels      Levels  `yaml:"levels"`
}

type Palette struct {
	Background HexColor `yaml:"background"`
	Wall       HexColor `yaml:"wall"`
	Floor      HexColor `yaml:"floor"`
	Goal       HexColor `yaml:"goal"`
	Player     HexColor `yaml:"player"`
	Obstacle   HexColor `yaml:"obstacle"`
}

type Levels struct {
	Path      string    `yaml:"path"`
	Generated []GenSpec `yaml:"generated"`
}

// GenSpec describes one scripted level to build at startup.
type GenSpec struct {
	Script string `yaml:"script"`
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`
}

// Default returns the built-in configuration. Loading a file overwrites
// only the keys it names, so partial configs keep these values.
func Default() Config {
	return Config{
		Title:       "tilemaze",
		TileSize:    40,
		WindowScale: 2,
		Colors: Palette{
			Background: rgb(0x14, 0x14, 0x1e),
			Wall:       rgb(0x3c, 0x3c, 0x50),
			Floor:      rgb(0x1e, 0x1e, 0x28),
			Goal:       rgb(0x64, 0xdc, 0x78),
			Player:     rgb(0xe6, 0xe6, 0xfa),
			Obstacle:   rgb(0xdc, 0x50, 0x50),
		},
		// an empty Levels.Path selects the embedded level set
	}
}

// Load reads the config at path, or the embedded default when the file
// does not exist. A file that exists but cannot be read or parsed is an
// error rather than a silent fallback.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		data, err = FS.ReadFile(DefaultPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read embedded %s: %w", DefaultPath, err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %v", c.TileSize)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("config: window_scale must be positive, got %d", c.WindowScale)
	}
	for _, g := range c.Levels.Generated {
		if g.Script == "" {
			return fmt.Errorf("config: generated level is missing a script")
		}
		if g.Width <= 0 || g.Height <= 0 {
			return fmt.Errorf("config: generated level %s: size %dx%d", g.Script, g.Width, g.Height)
		}
	}
	return nil
}

type HexColor struct {
	color.Color
}

func rgb(r, g, b uint8) HexColor {
	return HexColor{color.NRGBA{R: r, G: g, B: b, A: 255}}
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
