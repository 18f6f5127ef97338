// Package sweep buckets expiring rate links and carries the notification
// lookback windows that make the scheduled sweep idempotent across
// repeated ticks.
package sweep

import (
	"time"

	"iso-rate-api/internal/constant"
)

// Bucket identifies how close to expiry a link is.
type Bucket int

const (
	BucketNone Bucket = iota
	Bucket30d
	Bucket7d
	BucketExpired
)

// Classify places a valid_until date into an expiry bucket relative to
// today. A nil valid_until never expires.
func Classify(validUntil *time.Time, today time.Time) Bucket {
	if validUntil == nil {
		return BucketNone
	}
	day := date(today)
	until := date(*validUntil)
	switch {
	case !until.After(day): // <= today
		return BucketExpired
	case !until.After(day.AddDate(0, 0, 7)):
		return Bucket7d
	case !until.After(day.AddDate(0, 0, 30)):
		return Bucket30d
	default:
		return BucketNone
	}
}

func date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NotifyType maps a bucket onto the notification it emits.
func (b Bucket) NotifyType() string {
	switch b {
	case Bucket30d:
		return constant.NotifyExpiring30d
	case Bucket7d:
		return constant.NotifyExpiring7d
	case BucketExpired:
		return constant.NotifyExpired
	default:
		return ""
	}
}

// LookbackWindow is the dedupe horizon per bucket: a same-type
// notification younger than this suppresses a new one, so a scheduler
// firing twice inside the same logical period emits exactly once.
func (b Bucket) LookbackWindow() time.Duration {
	switch b {
	case Bucket30d:
		return 25 * 24 * time.Hour
	case Bucket7d:
		return 5 * 24 * time.Hour
	case BucketExpired:
		return 24 * time.Hour
	default:
		return 0
	}
}
