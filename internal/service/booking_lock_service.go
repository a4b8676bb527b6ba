package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrPhysicianBusy is returned when another booking for the same physician
// holds the lock; the caller should retry.
var ErrPhysicianBusy = errors.New("physician calendar is being updated, please retry")

// unlockScript deletes the lock key only when the stored token matches, so
// an expired lock taken over by another request is never released by us.
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

// BookingLocker serializes booking critical sections per physician
type BookingLocker interface {
	WithPhysicianLock(ctx context.Context, physicianID uuid.UUID, fn func(ctx context.Context) error) error
}

type redisBookingLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookingLockService creates a locker backed by a per-physician Redis key.
// The lock keeps two concurrent bookings for the same physician from racing
// between the conflict check and the insert; the database exclusion
// constraint remains the final arbiter.
func NewBookingLockService(client *redis.Client, ttl time.Duration) BookingLocker {
	return &redisBookingLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *redisBookingLocker) WithPhysicianLock(ctx context.Context, physicianID uuid.UUID, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:physician:%s", physicianID.String())
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire physician lock: %w", err)
	}
	if !ok {
		return ErrPhysicianBusy
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

func (l *redisBookingLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release physician lock: %w", err)
	}
	return nil
}
