// Package config holds the tunables of the box builder and loads them from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_MIN_DIMENSION           = 0.005
	DEFAULT_ORIENTATION_SENSITIVITY = 2.0
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

// UpAxisPolicy chooses the up axis of a new base
type UpAxisPolicy uint8

const (
	// UpSurfaceNormal lays the base flush with the hit surface
	UpSurfaceNormal UpAxisPolicy = iota
	// UpWorld ignores the surface tilt and always uses +Y
	UpWorld
)

func (p UpAxisPolicy) String() string {
	switch p {
	case UpSurfaceNormal:
		return "surfaceNormal"
	case UpWorld:
		return "worldUp"
	}
	return fmt.Sprintf("UpAxisPolicy(%d)", uint8(p))
}

func (p UpAxisPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *UpAxisPolicy) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "surfaceNormal":
		*p = UpSurfaceNormal
	case "worldUp":
		*p = UpWorld
	default:
		return fmt.Errorf("%w: unknown up axis policy %q", ErrInvalid, text)
	}
	return nil
}

// ExtrusionStrategy chooses which controller signal drives the height
type ExtrusionStrategy uint8

const (
	// ExtrudePosition follows the controller translation along the box up axis
	ExtrudePosition ExtrusionStrategy = iota
	// ExtrudeOrientation follows the controller pitch, position ignored
	ExtrudeOrientation
)

func (s ExtrusionStrategy) String() string {
	switch s {
	case ExtrudePosition:
		return "positionProjection"
	case ExtrudeOrientation:
		return "orientationProjection"
	}
	return fmt.Sprintf("ExtrusionStrategy(%d)", uint8(s))
}

func (s ExtrusionStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ExtrusionStrategy) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "positionProjection":
		*s = ExtrudePosition
	case "orientationProjection":
		*s = ExtrudeOrientation
	default:
		return fmt.Errorf("%w: unknown extrusion strategy %q", ErrInvalid, text)
	}
	return nil
}

type Config struct {
	UpAxisPolicy      UpAxisPolicy      `yaml:"upAxisPolicy" toml:"upAxisPolicy"`
	ExtrusionStrategy ExtrusionStrategy `yaml:"extrusionStrategy" toml:"extrusionStrategy"`

	// MinDimension is the floor applied to every box dimension
	MinDimension float64 `yaml:"minDimension" toml:"minDimension"`

	// OrientationSensitivity converts a pitch delta (sin of the angle) into length units
	OrientationSensitivity float64 `yaml:"orientationSensitivity" toml:"orientationSensitivity"`

	// InitialHeight is the height of a base while it is drawn
	InitialHeight float64 `yaml:"initialHeight" toml:"initialHeight"`
}

// Default returns the values the box tool shipped with
func Default() Config {
	return Config{
		UpAxisPolicy:           UpSurfaceNormal,
		ExtrusionStrategy:      ExtrudePosition,
		MinDimension:           DEFAULT_MIN_DIMENSION,
		OrientationSensitivity: DEFAULT_ORIENTATION_SENSITIVITY,
		InitialHeight:          DEFAULT_MIN_DIMENSION,
	}
}

func (c Config) Validate() error {
	if c.UpAxisPolicy > UpWorld {
		return fmt.Errorf("%w: up axis policy %v", ErrInvalid, c.UpAxisPolicy)
	}
	if c.ExtrusionStrategy > ExtrudeOrientation {
		return fmt.Errorf("%w: extrusion strategy %v", ErrInvalid, c.ExtrusionStrategy)
	}
	if !isFinite(c.MinDimension) || c.MinDimension <= 0 {
		return fmt.Errorf("%w: minDimension must be positive, got %v", ErrInvalid, c.MinDimension)
	}
	if !isFinite(c.OrientationSensitivity) || c.OrientationSensitivity == 0 {
		return fmt.Errorf("%w: orientationSensitivity must be non-zero, got %v", ErrInvalid, c.OrientationSensitivity)
	}
	if !isFinite(c.InitialHeight) || c.InitialHeight < c.MinDimension {
		return fmt.Errorf("%w: initialHeight %v is below minDimension %v", ErrInvalid, c.InitialHeight, c.MinDimension)
	}

	return nil
}

// Load reads a .yaml, .yml or .toml file on top of the defaults, then validates it.
// A file that omits initialHeight gets minDimension as its drawing height.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// heightField reports whether a file set initialHeight explicitly, zero included
type heightField struct {
	InitialHeight *float64 `yaml:"initialHeight" toml:"initialHeight"`
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or ".toml")
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	if err := decode(data, ext, &cfg); err != nil {
		return Config{}, err
	}

	var height heightField
	if err := decode(data, ext, &height); err != nil {
		return Config{}, err
	}
	if height.InitialHeight == nil {
		cfg.InitialHeight = cfg.MinDimension
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(data []byte, ext string, v any) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode yaml config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode toml config: %w", err)
		}
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
