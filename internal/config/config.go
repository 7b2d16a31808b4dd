package config

import "time"

// Config holds all application configuration.
type Config struct {
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// QuizConfig tunes the quiz.
type QuizConfig struct {
	Length       int           `mapstructure:"length" validate:"gte=1,lte=30"`
	CorrectDelay time.Duration `mapstructure:"correct_delay" validate:"gt=0"`
	WrongDelay   time.Duration `mapstructure:"wrong_delay" validate:"gt=0"`
	// DefaultPool is the pool the drill command uses without --all, and
	// where the home menu cursor starts.
	DefaultPool string `mapstructure:"default_pool" validate:"oneof=basic all"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Player   string `mapstructure:"player" validate:"required_if=Enabled true"`
	SoundDir string `mapstructure:"sound_dir" validate:"required_if=Enabled true"`
}

// LogConfig controls the log file. An empty File discards logs.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// CatalogConfig points at an optional custom shape catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// UseBasicPool reports whether DefaultPool selects the basic pool.
func (q QuizConfig) UseBasicPool() bool {
	return q.DefaultPool != "all"
}
