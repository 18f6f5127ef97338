package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"iso-rate-api/internal/dal"
	mainmodel "iso-rate-api/internal/model/main"
)

type PartnerDao struct{}

func NewPartnerDao() *PartnerDao { return &PartnerDao{} }

func (r *PartnerDao) GetLink(id uint64) (*mainmodel.PartnerRateLink, error) {
	var l mainmodel.PartnerRateLink
	if err := dal.MainDB.Where("id=?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PartnerDao) CreateLink(l *mainmodel.PartnerRateLink) error {
	return dal.MainDB.Create(l).Error
}

func (r *PartnerDao) DeleteLink(id uint64) error {
	return dal.MainDB.Where("id=?", id).Delete(&mainmodel.PartnerRateLink{}).Error
}

// ListApprovedByBinding 查询挂在某个类目绑定下、状态 approved 的链接
func (r *PartnerDao) ListApprovedByBinding(bindingID uint64) ([]mainmodel.PartnerRateLink, error) {
	var links []mainmodel.PartnerRateLink
	err := dal.MainDB.
		Where("category_binding_id=? AND status=?", bindingID, "approved").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ListApprovedWithExpiry returns approved links carrying a valid_until,
// the sweep population.
func (r *PartnerDao) ListApprovedWithExpiry() ([]mainmodel.PartnerRateLink, error) {
	var links []mainmodel.PartnerRateLink
	err := dal.MainDB.
		Where("status=? AND valid_until IS NOT NULL", "approved").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ListApprovedByPartner 查询 ISO 的 approved 链接，按 id 升序保证遍历稳定
func (r *PartnerDao) ListApprovedByPartner(partnerID uint64) ([]mainmodel.PartnerRateLink, error) {
	var links []mainmodel.PartnerRateLink
	err := dal.MainDB.
		Where("partner_id=? AND status=?", partnerID, "approved").
		Order("id asc").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PartnerDao) HasApprovedLink(partnerID uint64) (bool, error) {
	var n int64
	err := dal.MainDB.Model(&mainmodel.PartnerRateLink{}).
		Where("partner_id=? AND status=?", partnerID, "approved").
		Count(&n).Error
	return n > 0, err
}

// TransitionStatus flips a link's status and appends the audit row in
// one transaction. The guarded WHERE keeps a concurrent transition from
// double-applying.
func (r *PartnerDao) TransitionStatus(linkID uint64, prev, next string, audit *mainmodel.ContractAudit) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&mainmodel.PartnerRateLink{}).
			Where("id=? AND status=?", linkID, prev).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(audit).Error
	})
}

// MarkPendingUpdate queues a new version on a link without touching its
// served rates.
func (r *PartnerDao) MarkPendingUpdate(linkID, versionID uint64) error {
	return dal.MainDB.Model(&mainmodel.PartnerRateLink{}).
		Where("id=?", linkID).
		Updates(map[string]interface{}{
			"pending_update":     true,
			"pending_version_id": versionID,
		}).Error
}

// ApplyPendingVersion rebinds the link to its queued version.
func (r *PartnerDao) ApplyPendingVersion(l *mainmodel.PartnerRateLink, updates map[string]interface{}) error {
	return dal.MainDB.Model(&mainmodel.PartnerRateLink{}).
		Where("id=? AND pending_update=?", l.ID, true).
		Updates(updates).Error
}

func (r *PartnerDao) GetPlatformMargin(partnerID uint64) (*mainmodel.PlatformMarginConfig, error) {
	var m mainmodel.PlatformMarginConfig
	if err := dal.MainDB.Where("partner_id=?", partnerID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PartnerDao) UpsertPlatformMargin(m *mainmodel.PlatformMarginConfig) error {
	return dal.MainDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "partner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"margin_outbank", "margin_executive", "margin_core", "updated_at"}),
	}).Create(m).Error
}

func (r *PartnerDao) GetPartnerMargin(linkID uint64, brand, modality, channel string) (*mainmodel.PartnerMargin, error) {
	var m mainmodel.PartnerMargin
	err := dal.MainDB.
		Where("link_id=? AND brand=? AND modality=? AND channel=?", linkID, brand, modality, channel).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PartnerDao) UpsertPartnerMargin(m *mainmodel.PartnerMargin) error {
	return dal.MainDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "link_id"}, {Name: "brand"}, {Name: "modality"}, {Name: "channel"}},
		DoUpdates: clause.AssignmentColumns([]string{"percent_fee", "fixed_fee", "updated_at"}),
	}).Create(m).Error
}

func (r *PartnerDao) GetOverride(linkID uint64, brand, modality, channel string) (*mainmodel.RateOverride, error) {
	var o mainmodel.RateOverride
	err := dal.MainDB.
		Where("link_id=? AND brand=? AND modality=? AND channel=?", linkID, brand, modality, channel).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// SaveOverride upserts the override row and appends its history entry
// in one transaction; history is append-only.
func (r *PartnerDao) SaveOverride(o *mainmodel.RateOverride, h *mainmodel.OverrideHistory) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "link_id"}, {Name: "brand"}, {Name: "modality"}, {Name: "channel"}},
			DoUpdates: clause.AssignmentColumns([]string{"percent_fee", "is_active", "updated_at"}),
		}).Create(o).Error
		if err != nil {
			return err
		}
		h.OverrideID = o.ID
		return tx.Create(h).Error
	})
}

// ListCommissionLinks returns active user commission links, the
// consolidation population.
func (r *PartnerDao) ListCommissionLinks() ([]mainmodel.UserCommissionLink, error) {
	var links []mainmodel.UserCommissionLink
	if err := dal.MainDB.Where("is_active=?", true).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
