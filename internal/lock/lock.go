// Package lock wraps redsync mutexes that serialize the batch entry
// points against overlapping scheduler ticks and manual replays.
package lock

import (
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"

	"iso-rate-api/internal/dal"
)

var rs *redsync.Redsync

func Init() {
	pool := goredis.NewPool(dal.RedisClient)
	rs = redsync.New(pool)
}

// Consolidation returns the mutex guarding consolidate for one period.
func Consolidation(month, year int) *redsync.Mutex {
	return rs.NewMutex(
		fmt.Sprintf("lock:consolidate:%04d%02d", year, month),
		redsync.WithExpiry(10*time.Minute),
		redsync.WithTries(1),
	)
}

// Sweep returns the mutex guarding the expiration sweep.
func Sweep() *redsync.Mutex {
	return rs.NewMutex(
		"lock:sweep:expirations",
		redsync.WithExpiry(10*time.Minute),
		redsync.WithTries(1),
	)
}

// Accumulation returns the mutex guarding processAccumulation for one period.
func Accumulation(month, year int) *redsync.Mutex {
	return rs.NewMutex(
		fmt.Sprintf("lock:accumulate:%04d%02d", year, month),
		redsync.WithExpiry(10*time.Minute),
		redsync.WithTries(1),
	)
}
