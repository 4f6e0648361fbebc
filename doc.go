// Package logmask wires the log sanitization pipeline into a ready-to-use
// structured logger.
//
// The heavy lifting lives in the subpackages:
//
//   - pkg/sanitizer – the sanitization engine: fuzzy sensitive-key
//     detection, pattern and credential-phrase masking, recursive
//     traversal with cycle detection and depth limiting.
//   - pkg/logger – slog factory plus the sanitizing handler decorator.
//   - pkg/config – environment/.env/YAML configuration loading.
//
// This root package only assembles them:
//
//	cfg := config.MustLoad()
//	log, svc, err := logmask.New(cfg)
//	if err != nil {
//	    panic(err)
//	}
//
//	log.Info("login attempt", slog.String("password", "hunter2"))
//	// {"msg":"login attempt","password":"[MASKED]",...}
//
//	// or sanitize values directly before handing them elsewhere:
//	safe := svc.Sanitize(requestPayload)
//
// Construction fails fast on broken configuration; a successfully built
// pipeline never fails at log time – traversal faults degrade into
// sentinel placeholders inside the output.
package logmask
