// Package config loads the pipeline configuration from environment
// variables and an optional YAML file.
//
// It wraps `github.com/caarlos0/env/v11` for struct-tag parsing and
// `github.com/joho/godotenv` for automatic .env loading. When the
// LOGMASK_CONFIG_FILE environment variable names a YAML file, its values
// are layered over the environment via `gopkg.in/yaml.v3` – handy for
// shipping a reviewed sensitive-key list as a file while keeping
// per-deployment knobs in the environment.
//
// # Usage
//
//	import "github.com/DevFelipeRT/logmask/pkg/config"
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // fail fast: a broken configuration must not reach the sanitizer
//	}
//	svc, err := sanitizer.New(cfg.SanitizerConfig())
//
// # Environment variables
//
//	LOGMASK_SERVICE_NAME            service attr on every record (default "app")
//	LOGMASK_LOG_LEVEL               debug|info|warn|error (default "info")
//	LOGMASK_LOG_FORMAT              json|text (default "json")
//	LOGMASK_SENSITIVE_KEYS          comma-separated extra keys
//	LOGMASK_SENSITIVE_PATTERNS      semicolon-separated extra regex bodies
//	LOGMASK_SEPARATORS              comma-separated extra phrase separators
//	LOGMASK_MAX_DEPTH               traversal depth bound (default 8)
//	LOGMASK_MASK_TOKEN              mask token (default "[MASKED]")
//	LOGMASK_MASK_FORBIDDEN_PATTERN  forbidden-content override for the token
//	LOGMASK_CONFIG_FILE             optional YAML file layered over the env
//
// # Error handling
//
// Load returns sentinel errors (ErrParsingConfig, ErrReadingConfigFile,
// ErrInvalidConfigFile) joined with the underlying cause. MustLoad panics
// instead, for callers that cannot start without configuration.
package config
