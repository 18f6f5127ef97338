package dto

import "time"

type NotificationVO struct {
	ID             uint64    `json:"id"`
	PartnerID      uint64    `json:"partner_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	LinkedEntityID uint64    `json:"linked_entity_id"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotifyEventMQ is the JSON event published to notify_events alongside
// every persisted notification.
type NotifyEventMQ struct {
	NotifyID       uint64 `json:"notify_id"`
	PartnerID      uint64 `json:"partner_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	LinkedEntityID uint64 `json:"linked_entity_id"`
	CreatedAt      int64  `json:"created_at"`
}
