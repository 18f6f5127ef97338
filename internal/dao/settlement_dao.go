package dao

import (
	"time"

	"gorm.io/gorm"

	"iso-rate-api/internal/dal"
	mainmodel "iso-rate-api/internal/model/main"
)

type SettlementDao struct{}

func NewSettlementDao() *SettlementDao { return &SettlementDao{} }

// Exists is the consolidation pre-check. It is an optimization only:
// the unique key on (user, partner, month, year) is the source of
// truth under concurrent runs.
func (r *SettlementDao) Exists(userID, partnerID uint64, month, year int) (bool, error) {
	var n int64
	err := dal.MainDB.Model(&mainmodel.MonthlySettlement{}).
		Where("user_id=? AND partner_id=? AND month=? AND year=?", userID, partnerID, month, year).
		Count(&n).Error
	return n > 0, err
}

// ListAccumulated returns the settlements of (user, partner) still
// carrying an accumulated balance from periods strictly before (month,
// year). Unbounded lookback into the past, but a backfill of an older
// month must not see balances of later periods.
func (r *SettlementDao) ListAccumulated(tx *gorm.DB, userID, partnerID uint64, month, year int) ([]mainmodel.MonthlySettlement, error) {
	var rows []mainmodel.MonthlySettlement
	err := tx.
		Where("user_id=? AND partner_id=? AND status=?", userID, partnerID, "accumulated").
		Where("year < ? OR (year = ? AND month < ?)", year, year, month).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CarryForward flips prior accumulated rows; runs inside the caller's
// transaction so the flip and the new insert commit together.
func (r *SettlementDao) CarryForward(tx *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	res := tx.Model(&mainmodel.MonthlySettlement{}).
		Where("id IN ? AND status=?", ids, "accumulated").
		Update("status", "carried_forward")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(ids)) {
		// someone else folded part of the balance already
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SettlementDao) Create(tx *gorm.DB, s *mainmodel.MonthlySettlement) error {
	return tx.Create(s).Error
}

// ListPendingPastDeadline returns pending_invoice settlements of the
// period whose invoice deadline has passed and that have no invoice
// row.
func (r *SettlementDao) ListPendingPastDeadline(month, year int) ([]mainmodel.MonthlySettlement, error) {
	invoiced := dal.MainDB.Model(&mainmodel.PartnerInvoice{}).Select("settlement_id")
	var rows []mainmodel.MonthlySettlement
	err := dal.MainDB.
		Where("month=? AND year=? AND status=?", month, year, "pending_invoice").
		Where("invoice_deadline < ?", time.Now()).
		Where("id NOT IN (?)", invoiced).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FlipToAccumulated is the processAccumulation status transition. The
// guarded WHERE makes a replayed run a no-op.
func (r *SettlementDao) FlipToAccumulated(id uint64) (bool, error) {
	res := dal.MainDB.Model(&mainmodel.MonthlySettlement{}).
		Where("id=? AND status=?", id, "pending_invoice").
		Update("status", "accumulated")
	return res.RowsAffected > 0, res.Error
}
