package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDeltaH    = 50.0
	DefaultDeltaS    = -50.0
	DefaultZA        = 1
	DefaultZB        = 1
	DefaultMode      = "associative"
	DefaultParticles = 10
	DefaultFPS       = 60
	DefaultWidth     = 800
	DefaultHeight    = 300
	DefaultRadius    = 8.0
	DefaultLogLevel  = "info"
	DefaultTheme     = "slate"
)

type Config struct {
	Seed      int64           `yaml:"seed"`
	LogLevel  string          `yaml:"log_level"`
	Theme     string          `yaml:"theme"`
	Eyring    EyringConfig    `yaml:"eyring"`
	Salt      SaltConfig      `yaml:"salt"`
	Animation AnimationConfig `yaml:"animation"`
}

type EyringConfig struct {
	DeltaH float64 `yaml:"delta_h"`
	DeltaS float64 `yaml:"delta_s"`
}

type SaltConfig struct {
	ZA int `yaml:"za"`
	ZB int `yaml:"zb"`
}

type AnimationConfig struct {
	Mode      string  `yaml:"mode"`
	Particles int     `yaml:"particles"`
	FPS       int     `yaml:"fps"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Radius    float64 `yaml:"radius"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
		Eyring: EyringConfig{
			DeltaH: DefaultDeltaH,
			DeltaS: DefaultDeltaS,
		},
		Salt: SaltConfig{
			ZA: DefaultZA,
			ZB: DefaultZB,
		},
		Animation: AnimationConfig{
			Mode:      DefaultMode,
			Particles: DefaultParticles,
			FPS:       DefaultFPS,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Radius:    DefaultRadius,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
