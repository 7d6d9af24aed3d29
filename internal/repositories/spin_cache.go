package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
)

// SpinCacheRepository keeps each user's last spin time in Redis so the
// cooldown check does not hit Postgres on every request.
type SpinCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached timestamps
}

// NewSpinCacheRepository creates a new repository instance with the given TTL.
// A non-positive TTL falls back to one day.
func NewSpinCacheRepository(client *redis.Client, expiration time.Duration) *SpinCacheRepository {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &SpinCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func lastSpinKey(userID uuid.UUID) string {
	return fmt.Sprintf("spin:last:%s", userID)
}

// GetLastSpin returns the cached last spin time. found is false on a cache miss.
func (r *SpinCacheRepository) GetLastSpin(ctx context.Context, userID uuid.UUID) (last time.Time, found bool, err error) {
	key := lastSpinKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return time.Time{}, false, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", nil,
	)

	return time.UnixMilli(ms), true, nil
}

// SetLastSpin records the time of the user's latest spin. A timestamp older
// than the cached one is ignored so out-of-order writers cannot move the
// cooldown backwards.
func (r *SpinCacheRepository) SetLastSpin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	key := lastSpinKey(userID)
	ms := at.UnixMilli()

	err := setIfNewer.Run(ctx, r.client, []string{key}, ms, r.exp.Milliseconds()).Err()
	if errors.Is(err, redis.Nil) {
		err = nil
	}

	logger.Log.Infow(
		"key", key,
		"value", ms,
		"error", err,
	)

	return err
}

var setIfNewer = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current and tonumber(current) >= tonumber(ARGV[1]) then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)
