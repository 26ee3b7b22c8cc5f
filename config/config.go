// Package config handles animconv configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/binzume/animconv/logger"
	yaml "gopkg.in/yaml.v2"
)

// DefaultPath is used when no --config flag is given and the file exists.
const DefaultPath = "animconv.yaml"

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Actor    ActorConfig    `yaml:"actor"`
	Rig      RigConfig      `yaml:"rig"`
	Sequence SequenceConfig `yaml:"sequence"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ActorConfig describes the actor bound when the rig does not provide one.
type ActorConfig struct {
	Label string `yaml:"label"`
	Class string `yaml:"class"`
}

// RigConfig selects the control rig. Path (.gltf/.glb/.vrm) takes precedence over Preset.
type RigConfig struct {
	Preset string `yaml:"preset"`
	Path   string `yaml:"path"`
}

type SequenceConfig struct {
	Name string `yaml:"name"`
	// DisplayRate is used for new sequences when the animation has no frame_rate.
	DisplayRate float64 `yaml:"display_rate"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Actor: ActorConfig{
			Label: "SK_Mannequin",
			Class: "SkeletalMeshActor",
		},
		Rig: RigConfig{
			Preset: "mannequin",
		},
		Sequence: SequenceConfig{
			DisplayRate: 30,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults when
// allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Actor.Label == "" {
		return errors.New("actor.label is empty")
	}
	if c.Actor.Class == "" {
		return errors.New("actor.class is empty")
	}
	if c.Rig.Path == "" && c.Rig.Preset != "mannequin" {
		return fmt.Errorf("unknown rig preset %q", c.Rig.Preset)
	}
	if c.Sequence.DisplayRate < 0 {
		return errors.New("sequence.display_rate must not be negative")
	}
	return nil
}
