package dao

import (
	"time"

	"iso-rate-api/internal/dal"
	mainmodel "iso-rate-api/internal/model/main"
)

type NotificationDao struct{}

func NewNotificationDao() *NotificationDao { return &NotificationDao{} }

func (r *NotificationDao) Create(n *mainmodel.Notification) error {
	return dal.MainDB.Create(n).Error
}

// ExistsWithin reports a same (partner, type, entity) notification
// younger than the lookback window. The sweep's idempotency guard.
func (r *NotificationDao) ExistsWithin(partnerID uint64, notifyType string, entityID uint64, window time.Duration) (bool, error) {
	var n int64
	err := dal.MainDB.Model(&mainmodel.Notification{}).
		Where("partner_id=? AND type=? AND linked_entity_id=?", partnerID, notifyType, entityID).
		Where("created_at > ?", time.Now().Add(-window)).
		Count(&n).Error
	return n > 0, err
}

func (r *NotificationDao) ListByPartner(partnerID uint64, onlyUnread bool, limit int) ([]mainmodel.Notification, error) {
	q := dal.MainDB.Where("partner_id=?", partnerID)
	if onlyUnread {
		q = q.Where("is_read=?", false)
	}
	var rows []mainmodel.Notification
	if err := q.Order("created_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *NotificationDao) MarkRead(id uint64) (bool, error) {
	res := dal.MainDB.Model(&mainmodel.Notification{}).
		Where("id=? AND is_read=?", id, false).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}
