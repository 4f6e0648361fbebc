package logmask

import (
	"log/slog"

	"github.com/DevFelipeRT/logmask/pkg/config"
	"github.com/DevFelipeRT/logmask/pkg/logger"
	"github.com/DevFelipeRT/logmask/pkg/sanitizer"
)

// New assembles the pipeline from a loaded configuration: it constructs
// the sanitization service and a structured logger with the sanitizing
// handler installed. Extra logger options are applied after the
// configuration-derived ones and may override them.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    panic(err)
//	}
//	log, svc, err := logmask.New(cfg)
//	if err != nil {
//	    panic(err)
//	}
//	log.Info("login attempt", slog.String("password", "hunter2"))
//	safe := svc.Sanitize(payload)
func New(cfg config.Config, opts ...logger.Option) (*slog.Logger, *sanitizer.Service, error) {
	svc, err := sanitizer.New(cfg.SanitizerConfig())
	if err != nil {
		return nil, nil, err
	}

	base := []logger.Option{
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithFormat(parseFormat(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", cfg.ServiceName)),
		logger.WithSanitizer(svc),
	}
	log := logger.New(append(base, opts...)...)
	return log, svc, nil
}

// MustNew works like New but panics on configuration errors. Intended for
// program start-up where a broken sanitizer must prevent boot.
func MustNew(cfg config.Config, opts ...logger.Option) (*slog.Logger, *sanitizer.Service) {
	log, svc, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return log, svc
}

// parseLevel maps the config level string onto slog levels, defaulting to
// info for unknown values rather than failing: logging must come up even
// when the level knob is mistyped.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseFormat(format string) logger.Format {
	if format == string(logger.FormatText) {
		return logger.FormatText
	}
	return logger.FormatJSON
}
