package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingConfigFile is returned when the YAML file named by
	// LOGMASK_CONFIG_FILE cannot be read.
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrInvalidConfigFile is returned when the config file is not valid YAML.
	ErrInvalidConfigFile = errors.New("invalid config file")
)
