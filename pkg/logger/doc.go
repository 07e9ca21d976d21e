// Package logger builds *slog.Logger instances from functional options and
// supplies attribute helpers so every package names its log keys the same way.
//
// New picks a JSON or text handler and wraps it in LogHandlerDecorator, which
// runs registered ContextExtractor callbacks on every record. NewFromConfig
// layers LOG_LEVEL and LOG_FORMAT over an environment preset:
//
//	log := logger.NewFromConfig(cfg, environment.Production, "snippets",
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "login failed", logger.Status("AUTH_LOGIN_ERROR"), logger.Error(err))
//
// Services that take an optional logger default to Discard.
package logger
