package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/spritegen/spritegen/internal/templates"
)

// EnvPrefix is the prefix for environment variable overrides (SPRITEGEN_OUTPUT_VARIANT, ...).
const EnvPrefix = "SPRITEGEN"

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "spritegen.yaml"

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the configuration parsed from spritegen.yaml, the
// environment and command line flags.
type Config struct {
	// Input controls which files of the asset tree are picked up.
	Input InputConfig `yaml:"input" mapstructure:"input"`
	// Naming controls how identifiers are derived from file names.
	Naming NamingConfig `yaml:"naming" mapstructure:"naming"`
	// Output controls the generated files.
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	// Templates allows replacing the embedded templates.
	Templates TemplatesConfig `yaml:"templates" mapstructure:"templates"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InputConfig selects asset files.
type InputConfig struct {
	// Extensions lists the accepted file extensions, including the dot (e.g. ".png").
	Extensions []string `yaml:"extensions" mapstructure:"extensions"`
	// IncludeHidden includes files and directories starting with a dot.
	IncludeHidden bool `yaml:"include_hidden" mapstructure:"include_hidden"`
}

// NamingConfig configures identifier generation.
type NamingConfig struct {
	// Root is the name of the group representing the asset root directory.
	Root string `yaml:"root" mapstructure:"root"`
	// OnCollision is the policy for two entries of one group mapping to the
	// same identifier: "error", "last-wins" or "ignore".
	OnCollision string `yaml:"on_collision" mapstructure:"on_collision"`
	// Strict rejects identifiers that are not valid C identifiers.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// OutputConfig configures the generated documents.
type OutputConfig struct {
	// Variant selects the template set: "stub", "texture" or "renderer".
	Variant string `yaml:"variant" mapstructure:"variant"`
	// Header is the file name of the declaration document.
	Header string `yaml:"header" mapstructure:"header"`
	// Source is the file name of the definition document.
	Source string `yaml:"source" mapstructure:"source"`
	// Atomic writes each file through a temporary file and a rename.
	Atomic *bool `yaml:"atomic" mapstructure:"atomic"`
}

// TemplatesConfig points at user supplied templates.
type TemplatesConfig struct {
	// Dir holds partials.tmpl, declaration.tmpl and definition.tmpl overrides.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path" mapstructure:"path"`
}

// Collision policies.
const (
	CollisionError    = "error"
	CollisionLastWins = "last-wins"
	CollisionIgnore   = "ignore"
)

var validCollisionPolicies = map[string]bool{
	CollisionError:    true,
	CollisionLastWins: true,
	CollisionIgnore:   true,
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// NewViper returns a viper instance with defaults registered and environment
// overrides enabled. Every key gets a default so AutomaticEnv can see it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("input.extensions", def.Input.Extensions)
	v.SetDefault("input.include_hidden", def.Input.IncludeHidden)
	v.SetDefault("naming.root", def.Naming.Root)
	v.SetDefault("naming.on_collision", def.Naming.OnCollision)
	v.SetDefault("naming.strict", def.Naming.Strict)
	v.SetDefault("output.variant", def.Output.Variant)
	v.SetDefault("output.header", def.Output.Header)
	v.SetDefault("output.source", def.Output.Source)
	v.SetDefault("output.atomic", *def.Output.Atomic)
	v.SetDefault("templates.dir", def.Templates.Dir)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.path", def.Logging.Path)
	return v
}

// Load reads the configuration file (if any) into v and decodes the merged
// result. An explicit path must exist; otherwise DefaultFile is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read %s: %w", DefaultFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if len(config.Input.Extensions) == 0 {
		config.Input.Extensions = []string{".png"}
	}
	if config.Naming.Root == "" {
		config.Naming.Root = "root"
	}
	if config.Naming.OnCollision == "" {
		config.Naming.OnCollision = CollisionError
	}
	if config.Output.Variant == "" {
		config.Output.Variant = "stub"
	}
	if config.Output.Header == "" {
		config.Output.Header = "assets.h"
	}
	if config.Output.Source == "" {
		config.Output.Source = "assets.c"
	}
	if config.Output.Atomic == nil {
		t := true
		config.Output.Atomic = &t
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	for _, ext := range config.Input.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}

	if !validCollisionPolicies[config.Naming.OnCollision] {
		return fmt.Errorf("%w: invalid collision policy: %s (allowed: %s)", ErrInvalidConfig, config.Naming.OnCollision, allowedList(validCollisionPolicies))
	}

	if variants := templates.Variants(); config.Templates.Dir == "" && !slices.Contains(variants, config.Output.Variant) {
		return fmt.Errorf("%w: unknown variant: %s (allowed: %s)", ErrInvalidConfig, config.Output.Variant, strings.Join(variants, ", "))
	}

	if config.Output.Header == config.Output.Source {
		return fmt.Errorf("%w: header and source must differ (both %q)", ErrInvalidConfig, config.Output.Header)
	}
	for _, name := range []string{config.Output.Header, config.Output.Source} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: output file %q must be a plain file name", ErrInvalidConfig, name)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("%w: invalid logging level: %s (allowed: debug, info, warn, error)", ErrInvalidConfig, config.Logging.Level)
		}
	}

	return nil
}

func allowedList(m map[string]bool) string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
