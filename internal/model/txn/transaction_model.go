package txnmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Txn statuses as written by the ingestion pipeline.
const (
	TxnStatusPending  int8 = 0
	TxnStatusApproved int8 = 1
	TxnStatusDeclined int8 = 2
)

// PartnerTxn 交易聚合源表（由外部同步管道写入，这里只读）
type PartnerTxn struct {
	TxnID     uint64          `gorm:"column:txn_id;primaryKey" json:"txn_id"`
	PartnerID uint64          `gorm:"column:partner_id;not null;index" json:"partner_id"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Status    int8            `gorm:"column:status;not null;index" json:"status"`
	PaidAt    time.Time       `gorm:"column:paid_at;not null;index" json:"paid_at"`
}

func (PartnerTxn) TableName() string { return "p_partner_txn" }
