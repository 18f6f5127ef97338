package service

import (
	"testing"

	mainmodel "iso-rate-api/internal/model/main"
)

func TestPendingAlreadyQueued(t *testing.T) {
	v1, v2 := uint64(100), uint64(200)
	cases := []struct {
		name string
		link mainmodel.PartnerRateLink
		want bool
	}{
		{"same version queued", mainmodel.PartnerRateLink{PendingUpdate: true, PendingVersionID: &v1}, true},
		{"different version queued", mainmodel.PartnerRateLink{PendingUpdate: true, PendingVersionID: &v2}, false},
		{"nothing queued", mainmodel.PartnerRateLink{}, false},
		{"stale version id without flag", mainmodel.PartnerRateLink{PendingVersionID: &v1}, false},
	}
	for _, c := range cases {
		if got := pendingAlreadyQueued(&c.link, v1); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
