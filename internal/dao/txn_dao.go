package dao

import (
	"time"

	"github.com/shopspring/decimal"

	"iso-rate-api/internal/dal"
	txnmodel "iso-rate-api/internal/model/txn"
)

type TxnDao struct{}

func NewTxnDao() *TxnDao { return &TxnDao{} }

type txnAggRow struct {
	Cnt int64           `gorm:"column:cnt"`
	Sum decimal.Decimal `gorm:"column:total"`
}

// Aggregate returns (count, sum) of approved transactions attributed to
// the partner inside [from, to).
func (r *TxnDao) Aggregate(partnerID uint64, from, to time.Time) (int64, decimal.Decimal, error) {
	var row txnAggRow
	err := dal.TxnDB.Model(&txnmodel.PartnerTxn{}).
		Select("COUNT(*) AS cnt, COALESCE(SUM(amount), 0) AS total").
		Where("partner_id=? AND status=?", partnerID, txnmodel.TxnStatusApproved).
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return row.Cnt, row.Sum, nil
}
