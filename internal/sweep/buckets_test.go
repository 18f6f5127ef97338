package sweep

import (
	"testing"
	"time"

	"iso-rate-api/internal/constant"
)

var today = time.Date(2025, 6, 15, 11, 30, 0, 0, time.Local)

func day(offset int) *time.Time {
	t := today.AddDate(0, 0, offset)
	return &t
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		until *time.Time
		want  Bucket
	}{
		{"no expiry", nil, BucketNone},
		{"yesterday", day(-1), BucketExpired},
		{"today", day(0), BucketExpired},
		{"tomorrow", day(1), Bucket7d},
		{"in 7 days", day(7), Bucket7d},
		{"in 8 days", day(8), Bucket30d},
		{"in 30 days", day(30), Bucket30d},
		{"in 31 days", day(31), BucketNone},
	}
	for _, c := range cases {
		if got := Classify(c.until, today); got != c.want {
			t.Errorf("%s: bucket = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	// expiry late tonight still counts as expired today
	u := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	if got := Classify(&u, today); got != BucketExpired {
		t.Errorf("bucket = %d, want expired", got)
	}
}

func TestNotifyType(t *testing.T) {
	if Bucket30d.NotifyType() != constant.NotifyExpiring30d {
		t.Error("30d type mismatch")
	}
	if Bucket7d.NotifyType() != constant.NotifyExpiring7d {
		t.Error("7d type mismatch")
	}
	if BucketExpired.NotifyType() != constant.NotifyExpired {
		t.Error("expired type mismatch")
	}
	if BucketNone.NotifyType() != "" {
		t.Error("none must emit nothing")
	}
}

func TestLookbackWindow(t *testing.T) {
	if Bucket30d.LookbackWindow() != 25*24*time.Hour {
		t.Error("30d window must be 25 days")
	}
	if Bucket7d.LookbackWindow() != 5*24*time.Hour {
		t.Error("7d window must be 5 days")
	}
	if BucketExpired.LookbackWindow() != 24*time.Hour {
		t.Error("expired window must be 1 day")
	}
}
