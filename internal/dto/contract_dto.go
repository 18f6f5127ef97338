package dto

import "time"

// Actor is the authenticated identity extracted by the JWT middleware.
type Actor struct {
	ID   uint64
	Role string
}

type TransitionReq struct {
	Reason string `json:"reason"`
}

type TransitionResp struct {
	LinkID     uint64 `json:"link_id"`
	PrevStatus string `json:"prev_status"`
	NewStatus  string `json:"new_status"`
	AuditID    uint64 `json:"audit_id"`
}

type BindingTransitionResp struct {
	BindingID  uint64 `json:"binding_id"`
	PrevStatus string `json:"prev_status"`
	NewStatus  string `json:"new_status"`
	AuditID    uint64 `json:"audit_id"`
}

type LinkPartnerReq struct {
	CategoryBindingID uint64     `json:"category_binding_id" binding:"required"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	AutoRenew         bool       `json:"auto_renew"`
}

type LinkPartnerResp struct {
	LinkID      uint64 `json:"link_id"`
	RateTableID uint64 `json:"rate_table_id"`
	Status      string `json:"status"`
}

type NewVersionResp struct {
	RateTableID uint64 `json:"rate_table_id"`
	Version     int    `json:"version"`
	Notified    int    `json:"notified"`
}

// SweepSummary reports one expiration sweep run. Frozen counts expired
// links left serving their last rates (no auto-renew or no pending
// version); they are deliberately not deactivated.
type SweepSummary struct {
	Scanned  int      `json:"scanned"`
	Notified int      `json:"notified"`
	Renewed  int      `json:"renewed"`
	Frozen   int      `json:"frozen"`
	Errors   []string `json:"errors,omitempty"`
}
