// Package config loads the schematic configuration file.
//
// The file is TOML and every key is optional:
//
//	[layout]
//	scale = 2.0
//	strict = false        # reject duplicate element names
//
//	[render]
//	format = "tikz"       # tikz, svg, dot, pdf, png
//	svg_engine = "native" # native, graphviz
//	draw_labels = true
//	draw_nodes = true
//	label_nodes = true
//	picture_args = ""
//
//	[cache]
//	backend = "file"      # file, redis, none
//	ttl = "168h"
//	redis_addr = "localhost:6379"
//	redis_db = 0
//
// By default the file is read from $XDG_CONFIG_HOME/schematic/config.toml
// (or ~/.config/schematic/config.toml). A missing default file is not an
// error; command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/schematic/pkg/errors"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the parsed configuration file.
type Config struct {
	Layout Layout `toml:"layout"`
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
}

// Layout holds placement settings.
type Layout struct {
	Scale  float64 `toml:"scale" validate:"gt=0"`
	Strict bool    `toml:"strict"`
}

// Render holds drawing settings.
type Render struct {
	Format      string `toml:"format" validate:"oneof=tikz svg dot pdf png"`
	SVGEngine   string `toml:"svg_engine" validate:"oneof=native graphviz"`
	DrawLabels  bool   `toml:"draw_labels"`
	DrawNodes   bool   `toml:"draw_nodes"`
	LabelNodes  bool   `toml:"label_nodes"`
	PictureArgs string `toml:"picture_args"`
}

// Cache holds placement cache settings.
type Cache struct {
	Backend       string   `toml:"backend" validate:"oneof=file redis none"`
	TTL           Duration `toml:"ttl"`
	Dir           string   `toml:"dir"`
	RedisAddr     string   `toml:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db" validate:"gte=0"`
}

// Duration is a time.Duration written as a Go duration string ("168h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{Scale: 2},
		Render: Render{
			Format:     "tikz",
			SVGEngine:  "native",
			DrawLabels: true,
			DrawNodes:  true,
			LabelNodes: true,
		},
		Cache: Cache{
			Backend:   BackendFile,
			TTL:       Duration{7 * 24 * time.Hour},
			RedisAddr: "localhost:6379",
		},
	}
}

var validate = validator.New()

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	return nil
}

// Load reads the configuration from path, layered over [Default].
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault reads the configuration from [DefaultPath]. A missing file
// yields [Default].
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the configuration path using XDG conventions
// (~/.config/schematic/config.toml).
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "schematic", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "schematic", "config.toml"), nil
}
