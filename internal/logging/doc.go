// Package logging provides structured logging for the onboarding panel.
//
// It wraps Go's log/slog with a JSON handler and persistent attributes so
// every entry emitted while the panel runs can be traced back to the step
// and route it was produced under.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(logDir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("panel mounted", "step", "initial")
//
// # Context Propagation
//
//	panelLogger := logger.WithComponent("panel").WithStep("featureList")
//	panelLogger.Debug("feature activated", "feature", "inbox")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"feature activated","component":"panel","step":"featureList","feature":"inbox"}
//
// # Log Rotation
//
// [NewLoggerWithRotation] writes through a [RotatingWriter] that renames
// onboard.log to onboard.log.1 (and shifts older backups) once the file
// would exceed MaxSizeMB.
//
// # Testing
//
// Use [NopLogger] to discard output.
package logging
