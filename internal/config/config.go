package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/pattern"
)

const (
	DefaultWidth       = 70
	DefaultHeight      = 30
	DefaultProbability = 0.2
	DefaultEpochs      = 200
	DefaultIntervalMs  = 100
)

// Config describes one simulation scene. When Pattern is set it is
// overlaid at (OffsetX, OffsetY); otherwise the field is randomized with
// Probability and Seed. A negative Seed means "derive from the clock".
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Pattern     string  `yaml:"pattern"`
	OffsetX     int     `yaml:"offset_x"`
	OffsetY     int     `yaml:"offset_y"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
	Epochs      int     `yaml:"epochs"`
	IntervalMs  int     `yaml:"interval_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Probability: DefaultProbability,
		Seed:        -1,
		Epochs:      DefaultEpochs,
		IntervalMs:  DefaultIntervalMs,
	}
}

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

// Interval converts the configured epoch delay to a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// BuildField allocates and seeds a field according to the config.
func (c *Config) BuildField() (*life.Field, error) {
	f, err := life.New(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	if c.Pattern != "" {
		mask, err := pattern.Get(c.Pattern)
		if err != nil {
			return nil, err
		}
		f.SetPattern(mask, c.OffsetX, c.OffsetY)
		return f, nil
	}
	if err := f.Randomize(c.Probability, c.Seed); err != nil {
		return nil, err
	}
	return f, nil
}
