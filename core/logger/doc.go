// Package logger provides structured logging utilities built on Go's standard
// slog package: a small factory with environment presets and nil-safe
// attribute helpers for common logging scenarios.
//
// # Basic Usage
//
//	import "github.com/kibraconnect/appkit/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("kibraconnect"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("kibraconnect"))
//
//	log.Info("login succeeded",
//		logger.Component("auth"),
//		logger.Event("login"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty values, so they can be
// passed unconditionally:
//
//	log.Error("request failed",
//		logger.Error(err),
//		logger.Method("POST"),
//		logger.Path("auth/login/"),
//		logger.StatusCode(401),
//	)
//
// # Global Logger
//
// Install a configured logger as the process default:
//
//	logger.SetAsDefault(logger.New(logger.WithProduction("kibraconnect")))
package logger
