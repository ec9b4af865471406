package bench

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	mireval "github.com/hendriks73/mir-eval"
	"github.com/hendriks73/mir-eval/structure"
	"github.com/hendriks73/mir-eval/util"
)

// Config holds evaluation parameters.
type Config struct {
	Window        float64  `yaml:"window"`
	Beta          float64  `yaml:"beta"`
	Trim          bool     `yaml:"trim"`
	FrameSize     float64  `yaml:"frame_size"`
	Normalization string   `yaml:"normalization"`
	Metrics       []string `yaml:"metrics"`
	Concurrency   int      `yaml:"concurrency"`
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Window:        util.DefaultWindow,
		Beta:          util.DefaultBeta,
		Trim:          util.DefaultTrim,
		FrameSize:     util.DefaultFrameSize,
		Normalization: structure.Arithmetic.String(),
	}
}

// LoadConfig reads a YAML config file over the defaults, then applies
// SEGEVAL_* environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envFloat(&cfg.Window, "SEGEVAL_WINDOW"); err != nil {
		return Config{}, err
	}
	if err := envFloat(&cfg.Beta, "SEGEVAL_BETA"); err != nil {
		return Config{}, err
	}
	if err := envFloat(&cfg.FrameSize, "SEGEVAL_FRAME_SIZE"); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("SEGEVAL_TRIM"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SEGEVAL_TRIM: %w", err)
		}
		cfg.Trim = b
	}
	if v := os.Getenv("SEGEVAL_METRICS"); v != "" {
		cfg.Metrics = strings.Split(v, ",")
	}

	return cfg, nil
}

func envFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

// Options converts the config into evaluator options.
func (c Config) Options(logger *slog.Logger) ([]mireval.Option, error) {
	norm, err := structure.ParseNormalization(c.Normalization)
	if err != nil {
		return nil, err
	}
	return []mireval.Option{
		mireval.WithWindow(c.Window),
		mireval.WithBeta(c.Beta),
		mireval.WithTrim(c.Trim),
		mireval.WithFrameSize(c.FrameSize),
		mireval.WithNormalization(norm),
		mireval.WithMetrics(c.Metrics...),
		mireval.WithConcurrency(c.Concurrency),
		mireval.WithLogger(logger),
	}, nil
}
