package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySettlement 每 (user, partner, month, year) 一行。唯一索引是并发
// 合并跑批的幂等兜底：重复插入按已处理跳过。
type MonthlySettlement struct {
	ID                uint64          `gorm:"column:id;primaryKey" json:"id"`
	UserID            uint64          `gorm:"column:user_id;not null;uniqueIndex:uk_settlement,priority:1" json:"user_id"`
	PartnerID         uint64          `gorm:"column:partner_id;not null;uniqueIndex:uk_settlement,priority:2" json:"partner_id"`
	Month             int             `gorm:"column:month;not null;uniqueIndex:uk_settlement,priority:3" json:"month"`
	Year              int             `gorm:"column:year;not null;uniqueIndex:uk_settlement,priority:4" json:"year"`
	TotalTransactions int64           `gorm:"column:total_transactions;not null;default:0" json:"total_transactions"`
	TotalAmount       decimal.Decimal `gorm:"column:total_amount;type:decimal(18,2);not null;default:0" json:"total_amount"`
	CommissionPercent decimal.Decimal `gorm:"column:commission_percent;type:decimal(18,4);not null;default:0" json:"commission_percent"`
	CommissionValue   decimal.Decimal `gorm:"column:commission_value;type:decimal(18,2);not null;default:0" json:"commission_value"`
	Status            string          `gorm:"column:status;size:20;not null;index" json:"status"`
	InvoiceDeadline   time.Time       `gorm:"column:invoice_deadline;not null" json:"invoice_deadline"`
	PaymentDeadline   time.Time       `gorm:"column:payment_deadline;not null" json:"payment_deadline"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MonthlySettlement) TableName() string { return "iso_monthly_settlement" }

// PartnerInvoice 由账单界面写入；核心只在 processAccumulation 里查存在性
type PartnerInvoice struct {
	ID           uint64          `gorm:"column:id;primaryKey" json:"id"`
	SettlementID uint64          `gorm:"column:settlement_id;not null;uniqueIndex" json:"settlement_id"`
	PartnerID    uint64          `gorm:"column:partner_id;not null;index" json:"partner_id"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	IssuedAt     time.Time       `gorm:"column:issued_at;not null" json:"issued_at"`
}

func (PartnerInvoice) TableName() string { return "iso_partner_invoice" }

// Notification 追加式事件日志，is_read 是唯一可变字段
type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey" json:"id"`
	PartnerID      uint64    `gorm:"column:partner_id;not null;index" json:"partner_id"`
	Type           string    `gorm:"column:type;size:30;not null;index" json:"type"`
	Title          string    `gorm:"column:title;size:120;not null" json:"title"`
	Message        string    `gorm:"column:message;size:500" json:"message"`
	LinkedEntityID uint64    `gorm:"column:linked_entity_id;not null;default:0;index" json:"linked_entity_id"`
	IsRead         bool      `gorm:"column:is_read;not null;default:0" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "iso_notification" }
