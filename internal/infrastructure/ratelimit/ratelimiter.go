// Package ratelimit provides sliding-window rate limiting backed by redis.
package ratelimit

import (
	"context"
	"time"
)

type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	// Allow records an attempt under key and reports whether it is within
	// every configured window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	Remaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

// NoopLimiter allows everything. Used when rate limiting is disabled.
type NoopLimiter struct{}

func NewNoopLimiter() *NoopLimiter { return &NoopLimiter{} }

func (l *NoopLimiter) Allow(ctx context.Context, key string, limits Limits) (bool, error) {
	return true, nil
}

func (l *NoopLimiter) Remaining(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (l *NoopLimiter) Reset(ctx context.Context, key string) error { return nil }
