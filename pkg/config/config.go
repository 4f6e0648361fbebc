package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
	"gopkg.in/yaml.v3"

	"github.com/DevFelipeRT/logmask/pkg/sanitizer"
)

// Config is the external configuration surface of the pipeline: sanitizer
// settings plus the logger knobs the root assembly needs. Values come from
// environment variables (a .env file is loaded automatically when present)
// and may be overridden by a YAML file named in LOGMASK_CONFIG_FILE.
type Config struct {
	ServiceName string `env:"LOGMASK_SERVICE_NAME" envDefault:"app" yaml:"service_name"`
	LogLevel    string `env:"LOGMASK_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	LogFormat   string `env:"LOGMASK_LOG_FORMAT" envDefault:"json" yaml:"log_format"`

	// SensitiveKeys and Separators are comma-separated in the environment.
	// SensitivePatterns are semicolon-separated because regex bodies
	// regularly contain commas.
	SensitiveKeys     []string `env:"LOGMASK_SENSITIVE_KEYS" envSeparator:"," yaml:"sensitive_keys"`
	SensitivePatterns []string `env:"LOGMASK_SENSITIVE_PATTERNS" envSeparator:";" yaml:"sensitive_patterns"`
	Separators        []string `env:"LOGMASK_SEPARATORS" envSeparator:"," yaml:"separators"`

	MaxDepth                  int    `env:"LOGMASK_MAX_DEPTH" envDefault:"8" yaml:"max_depth"`
	MaskToken                 string `env:"LOGMASK_MASK_TOKEN" envDefault:"[MASKED]" yaml:"mask_token"`
	MaskTokenForbiddenPattern string `env:"LOGMASK_MASK_FORBIDDEN_PATTERN" yaml:"mask_token_forbidden_pattern"`

	ConfigFile string `env:"LOGMASK_CONFIG_FILE" yaml:"-"`
}

// Load reads configuration from the environment and, when
// LOGMASK_CONFIG_FILE is set, layers the YAML file on top. File values win
// over environment values; fields absent from the file keep their
// environment values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.ConfigFile != "" {
		data, err := os.ReadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, errors.Join(ErrReadingConfigFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Join(ErrInvalidConfigFile, err)
		}
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Useful where
// configuration is required for the application to start at all.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// SanitizerConfig projects the loaded values onto the sanitizer's own
// configuration struct.
func (c Config) SanitizerConfig() sanitizer.Config {
	return sanitizer.Config{
		SensitiveKeys:             c.SensitiveKeys,
		SensitivePatterns:         c.SensitivePatterns,
		Separators:                c.Separators,
		MaxDepth:                  c.MaxDepth,
		MaskToken:                 c.MaskToken,
		MaskTokenForbiddenPattern: c.MaskTokenForbiddenPattern,
	}
}
