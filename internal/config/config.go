// Package config loads runtime settings from .codeamnesia.yaml, environment
// variables, and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all tunable settings for one run.
type Config struct {
	// SampleSize caps how many commits are drawn from history per run.
	SampleSize int `mapstructure:"sample_size" yaml:"sample_size"`

	// QuestionsPerTrack is the target question count for each of the code
	// and comment tracks.
	QuestionsPerTrack int `mapstructure:"questions_per_track" yaml:"questions_per_track"`

	// MinQuestions is the floor below which a track aborts the run with an
	// insufficient-material error.
	MinQuestions int `mapstructure:"min_questions" yaml:"min_questions"`

	// Seed fixes the random source for reproducible runs; 0 means seed from
	// the current time.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SampleSize:        200,
		QuestionsPerTrack: 10,
		MinQuestions:      3,
		Seed:              0,
	}
}

// Load reads configuration, layering defaults, the config file (explicit
// path, working directory, then $HOME), CODEAMNESIA_* environment variables,
// and a best-effort .env file.
func Load(path string) (*Config, error) {
	// .env is optional; ignore absence.
	_ = godotenv.Load()

	v := viper.New()
	defaults := Default()
	v.SetDefault("sample_size", defaults.SampleSize)
	v.SetDefault("questions_per_track", defaults.QuestionsPerTrack)
	v.SetDefault("min_questions", defaults.MinQuestions)
	v.SetDefault("seed", defaults.Seed)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".codeamnesia")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("CODEAMNESIA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot honor.
func (c *Config) Validate() error {
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be positive, got %d", c.SampleSize)
	}
	if c.QuestionsPerTrack < 1 {
		return fmt.Errorf("questions_per_track must be positive, got %d", c.QuestionsPerTrack)
	}
	if c.MinQuestions < 1 || c.MinQuestions > c.QuestionsPerTrack {
		return fmt.Errorf("min_questions must be in [1, questions_per_track], got %d", c.MinQuestions)
	}
	return nil
}
