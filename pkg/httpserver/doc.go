// Package httpserver runs an http.Handler with sane timeouts, signal-driven
// graceful shutdown and liveness/readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, SIGINT or SIGTERM is received, or
// Shutdown is called; in each case in-flight requests get ShutdownTimeout to
// finish. Ready and Addr expose the bound listener, which is useful with
// port 0 in tests.
package httpserver
