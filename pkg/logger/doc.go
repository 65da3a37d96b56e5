// Package logger builds *slog.Logger instances for notifykit components.
//
// New assembles a text or JSON handler from functional options and wraps it in
// LogHandlerDecorator, which appends attributes extracted from the context of
// each record. The attr helpers (Component, NotificationID, Category,
// ObserverID, Count, Version, Duration, Error) keep attribute keys consistent
// across packages.
//
//	log := logger.New(
//	    logger.WithDevelopment("notifykit"),
//	    logger.WithContextValue("trace_id", traceKey{}),
//	)
//	log.LogAttrs(ctx, slog.LevelInfo, "simulator started",
//	    logger.Component("simulator"),
//	    logger.Duration(interval),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
