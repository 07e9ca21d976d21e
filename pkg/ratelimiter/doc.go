// Package ratelimiter implements token bucket rate limiting with in-memory
// and Redis stores and a net/http middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request consumes one token; when none is left the
// middleware answers 429 with Retry-After and the X-RateLimit-* headers.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), cfg)
//	limit := ratelimiter.Middleware(bucket, ratelimiter.Composite(ratelimiter.ByIP, ratelimiter.ByPath))
//
// RedisStore refills and consumes in a single Lua script so concurrent
// instances share one budget per key.
package ratelimiter
