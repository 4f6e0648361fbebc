// Package logger provides a slog factory with functional options, helper
// attribute constructors, and two handler decorators: one that sanitizes
// every record through the sanitization service and one that injects
// attributes from context.Context.
//
// # Architecture
//
// New builds a concrete slog.Handler – slog.NewTextHandler or
// slog.NewJSONHandler – from the configured Format, then layers the
// decorators:
//
//	contextHandler → SanitizeHandler → text/json handler
//
// The sanitizing layer sits below the context layer so that attributes
// extracted from context are sanitized like everything else. SanitizeHandler
// rewrites the record message through the string pipeline, masks the value
// of any attribute whose key is a sensitive key, and routes string, group
// and composite attribute values through sanitizer.Service.
//
// # Usage
//
//	import (
//	    "github.com/DevFelipeRT/logmask/pkg/logger"
//	    "github.com/DevFelipeRT/logmask/pkg/sanitizer"
//	)
//
//	svc, _ := sanitizer.New(sanitizer.Config{})
//	log := logger.New(
//	    logger.WithProduction("billing"),
//	    logger.WithSanitizer(svc),
//	)
//
//	log.Info("user login", slog.String("password", "hunter2"))
//	// {"msg":"user login","password":"[MASKED]",...}
//
// Helper constructors such as Group, Error and Masked live in attr.go and
// keep attribute naming consistent across call sites.
//
// Without WithSanitizer the factory produces a plain structured logger;
// sanitization is opt-in per logger, not global state.
package logger
