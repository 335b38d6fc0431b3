// Package logger provides structured logging built on log/slog: a small
// factory with functional options and a set of attribute helpers.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("labkit"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Production setups write JSON:
//
//	log := logger.New(logger.WithProduction("labkit"))
//
// # Context Values
//
// Extractors add request-scoped attributes to every *Context call:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "dispatching")
//
// # Attribute Helpers
//
// Helpers return an empty attribute for missing values, which slog drops:
//
//	log.Error("dispatch failed",
//		logger.Route("POST", "/invoke"),
//		logger.Error(err),
//		logger.Duration(time.Since(start)),
//	)
//
// # Testing
//
// Capture output with WithOutput:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//
// Components that accept a logger default to Discard.
package logger
