// Package redis connects go-redis clients with retries and exposes a
// readiness check. Redis is optional for the application: when REDIS_URL is
// empty the session lookup cache is simply not installed.
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		...
//	}
package redis
