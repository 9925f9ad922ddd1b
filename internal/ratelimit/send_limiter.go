package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/invoicegen/internal/config"
)

const (
	keySendRecipient = "invoicegen:send:recipient:%s"
	keySendLock      = "invoicegen:send:lock:%s:%s"
)

// Limiter guards outgoing invoice email.
type Limiter interface {
	// Allow takes one send from the recipient budget.
	Allow(ctx context.Context, recipient string) (Result, error)
	// Lock blocks a concurrent send of the same invoice to the same
	// recipient. The returned release func is never nil.
	Lock(ctx context.Context, recipient, invoiceNumber string) (func(context.Context), error)
}

type SendLimiter struct {
	client *redis.Client
	bucket *TokenBucket
	locker *Locker

	rate    float64
	burst   int
	lockTTL time.Duration
}

// NewSendLimiter returns nil when rate limiting is disabled. A nil
// *SendLimiter allows everything.
func NewSendLimiter(cfg config.RateLimitConfig) (*SendLimiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if cfg.SendRate <= 0 || cfg.SendBurst <= 0 {
		return nil, errors.New("send invoice rate limit must be positive")
	}
	if cfg.SendLockTTL <= 0 {
		return nil, errors.New("send invoice lock ttl must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return newSendLimiter(client, cfg), nil
}

func newSendLimiter(client *redis.Client, cfg config.RateLimitConfig) *SendLimiter {
	return &SendLimiter{
		client:  client,
		bucket:  NewTokenBucket(client),
		locker:  NewLocker(client),
		rate:    cfg.SendRate,
		burst:   cfg.SendBurst,
		lockTTL: cfg.SendLockTTL,
	}
}

func (l *SendLimiter) Enabled() bool {
	return l != nil && l.client != nil
}

func (l *SendLimiter) Allow(ctx context.Context, recipient string) (Result, error) {
	if !l.Enabled() {
		return Result{Allowed: true}, nil
	}
	return l.bucket.Allow(ctx, recipientKey(recipient), l.rate, l.burst)
}

func (l *SendLimiter) Lock(ctx context.Context, recipient, invoiceNumber string) (func(context.Context), error) {
	noop := func(context.Context) {}
	if !l.Enabled() {
		return noop, nil
	}

	key := lockKey(recipient, invoiceNumber)
	token, err := l.locker.Acquire(ctx, key, l.lockTTL)
	if err != nil {
		return noop, err
	}
	return func(ctx context.Context) {
		_ = l.locker.Release(ctx, key, token)
	}, nil
}

func (l *SendLimiter) Close() error {
	if !l.Enabled() {
		return nil
	}
	return l.client.Close()
}

func recipientKey(recipient string) string {
	return fmt.Sprintf(keySendRecipient, normalize(recipient))
}

func lockKey(recipient, invoiceNumber string) string {
	number := strings.TrimSpace(invoiceNumber)
	if number == "" {
		number = "-"
	}
	return fmt.Sprintf(keySendLock, normalize(recipient), number)
}

func normalize(recipient string) string {
	return strings.ToLower(strings.TrimSpace(recipient))
}
