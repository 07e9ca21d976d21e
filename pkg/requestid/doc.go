// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware takes the ID from the X-Request-ID header when it is 1 to 128
// characters of letters, digits, '-' and '_', and generates a UUIDv7
// otherwise. The ID is echoed in the response header and stored in the
// request context, where LoggerExtractor picks it up for slog records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	router.Use(requestid.Middleware)
package requestid
