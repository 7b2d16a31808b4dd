package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SHAPES_QUIZ_LENGTH.
const EnvPrefix = "SHAPES"

// ErrInvalidConfig wraps every loading and validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration. When path is empty the default file
// location is tried and a missing file is not an error. An explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !isNotExist(err) {
				return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its field rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("quiz.length", 10)
	v.SetDefault("quiz.correct_delay", "1200ms")
	v.SetDefault("quiz.wrong_delay", "2200ms")
	v.SetDefault("quiz.default_pool", "basic")

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.player", "")
	v.SetDefault("audio.sound_dir", dataPath("audio"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", statePath("shapes.log"))

	v.SetDefault("catalog.path", "")
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// DefaultFile returns $XDG_CONFIG_HOME/shapes/config.yaml, or "" when no
// home directory can be resolved.
func DefaultFile() string {
	return xdgPath("XDG_CONFIG_HOME", ".config", "config.yaml")
}

func statePath(name string) string {
	return xdgPath("XDG_STATE_HOME", filepath.Join(".local", "state"), name)
}

func dataPath(name string) string {
	return xdgPath("XDG_DATA_HOME", filepath.Join(".local", "share"), name)
}

func xdgPath(env, fallback, name string) string {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, "shapes", name)
}
