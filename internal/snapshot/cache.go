// Package snapshot caches computed rate triples in redis. Every write
// path that touches a cascade input must invalidate the affected keys
// in the same call path; a stale snapshot is a correctness bug.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"iso-rate-api/internal/dal"
	"iso-rate-api/internal/dto"
)

const RateSnapshotPrefix = "rate_snapshot:"

const snapshotTTL = 24 * time.Hour

func cellKey(partnerID uint64, brand, modality, channel string) string {
	return fmt.Sprintf("%s%d:%s:%s:%s", RateSnapshotPrefix, partnerID, brand, modality, channel)
}

func Get(ctx context.Context, partnerID uint64, brand, modality, channel string) (*dto.RateTriple, bool) {
	raw, err := dal.RedisClient.Get(ctx, cellKey(partnerID, brand, modality, channel)).Result()
	if err != nil {
		return nil, false
	}
	var t dto.RateTriple
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, false
	}
	return &t, true
}

func Set(ctx context.Context, partnerID uint64, brand, modality, channel string, t dto.RateTriple) {
	b, err := json.Marshal(t)
	if err != nil {
		return
	}
	dal.RedisClient.Set(ctx, cellKey(partnerID, brand, modality, channel), b, snapshotTTL)
}

// InvalidateCell drops one cached cell, called on partner-margin and
// override upserts.
func InvalidateCell(ctx context.Context, partnerID uint64, brand, modality, channel string) error {
	return dal.RedisClient.Del(ctx, cellKey(partnerID, brand, modality, channel)).Err()
}

// InvalidatePartner drops every cached cell of one partner, called on
// platform-margin upserts and version rebinds.
func InvalidatePartner(ctx context.Context, partnerID uint64) error {
	pattern := fmt.Sprintf("%s%d:*", RateSnapshotPrefix, partnerID)
	var cursor uint64
	for {
		keys, next, err := dal.RedisClient.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			if err == redis.Nil {
				return nil
			}
			return err
		}
		if len(keys) > 0 {
			if err := dal.RedisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
