// Package notify is the append-only notification sink. The core decides
// what to emit and deduplicates repeats; rendering and delivery belong
// to the UI.
package notify

import (
	"time"

	"iso-rate-api/internal/dao"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/idgen"
	mainmodel "iso-rate-api/internal/model/main"
	"iso-rate-api/internal/mq"
)

type Sink struct {
	notifyDao *dao.NotificationDao
}

func NewSink() *Sink {
	return &Sink{notifyDao: dao.NewNotificationDao()}
}

// Emit persists one notification unless a same (partner, type, entity)
// row exists inside the dedupe window, then publishes the MQ event.
// Returns whether a row was written.
func (s *Sink) Emit(partnerID uint64, notifyType, title, message string, entityID uint64, dedupeWindow time.Duration) (bool, error) {
	if dedupeWindow > 0 {
		exists, err := s.notifyDao.ExistsWithin(partnerID, notifyType, entityID, dedupeWindow)
		if err != nil {
			return false, err
		}
		if exists {
			return false, nil
		}
	}
	n := &mainmodel.Notification{
		ID:             idgen.New(),
		PartnerID:      partnerID,
		Type:           notifyType,
		Title:          title,
		Message:        message,
		LinkedEntityID: entityID,
	}
	if err := s.notifyDao.Create(n); err != nil {
		return false, err
	}
	_ = mq.PublishNotifyCreated(dto.NotifyEventMQ{
		NotifyID:       n.ID,
		PartnerID:      partnerID,
		Type:           notifyType,
		Title:          title,
		LinkedEntityID: entityID,
		CreatedAt:      time.Now().Unix(),
	})
	return true, nil
}
