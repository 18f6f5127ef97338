package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformMarginConfig 平台在供应商成本之上加收的三段毛利（每个 ISO 一行，只增改不删）
type PlatformMarginConfig struct {
	ID              uint64          `gorm:"column:id;primaryKey" json:"id"`
	PartnerID       uint64          `gorm:"column:partner_id;not null;uniqueIndex" json:"partner_id"`
	MarginOutbank   decimal.Decimal `gorm:"column:margin_outbank;type:decimal(18,4);not null;default:0" json:"margin_outbank"`
	MarginExecutive decimal.Decimal `gorm:"column:margin_executive;type:decimal(18,4);not null;default:0" json:"margin_executive"`
	MarginCore      decimal.Decimal `gorm:"column:margin_core;type:decimal(18,4);not null;default:0" json:"margin_core"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PlatformMarginConfig) TableName() string { return "iso_platform_margin" }

// PartnerRateLink ISO 对某个类目费率的采用关系。served 版本（RateTableID）在
// 合约存续期内保持稳定，新版本只通过 pending 字段排队。
type PartnerRateLink struct {
	ID                uint64     `gorm:"column:id;primaryKey" json:"id"`
	PartnerID         uint64     `gorm:"column:partner_id;not null;uniqueIndex:uk_partner_binding,priority:1" json:"partner_id"`
	CategoryBindingID uint64     `gorm:"column:category_binding_id;not null;uniqueIndex:uk_partner_binding,priority:2" json:"category_binding_id"`
	RateTableID       uint64     `gorm:"column:rate_table_id;not null" json:"rate_table_id"`
	Status            string     `gorm:"column:status;size:24;not null;default:draft;index" json:"status"`
	Version           int        `gorm:"column:version;not null;default:1" json:"version"`
	ValidFrom         *time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidUntil        *time.Time `gorm:"column:valid_until;index" json:"valid_until"`
	AutoRenew         bool       `gorm:"column:auto_renew;not null;default:0" json:"auto_renew"`
	PendingUpdate     bool       `gorm:"column:pending_update;not null;default:0" json:"pending_update"`
	PendingVersionID  *uint64    `gorm:"column:pending_version_id" json:"pending_version_id"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PartnerRateLink) TableName() string { return "iso_partner_link" }

// PartnerMargin ISO 自己加收的毛利，按 (link, brand, modality, channel) 唯一
type PartnerMargin struct {
	ID         uint64          `gorm:"column:id;primaryKey" json:"id"`
	LinkID     uint64          `gorm:"column:link_id;not null;uniqueIndex:uk_margin,priority:1" json:"link_id"`
	Brand      string          `gorm:"column:brand;size:20;not null;uniqueIndex:uk_margin,priority:2" json:"brand"`
	Modality   string          `gorm:"column:modality;size:30;not null;uniqueIndex:uk_margin,priority:3" json:"modality"`
	Channel    string          `gorm:"column:channel;size:20;not null;uniqueIndex:uk_margin,priority:4" json:"channel"`
	PercentFee decimal.Decimal `gorm:"column:percent_fee;type:decimal(18,4);not null;default:0" json:"percent_fee"`
	FixedFee   decimal.Decimal `gorm:"column:fixed_fee;type:decimal(18,2);not null;default:0" json:"fixed_fee"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PartnerMargin) TableName() string { return "iso_partner_margin" }

// UserCommissionLink 提成用户与 ISO 的关联及提成类别
type UserCommissionLink struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_partner,priority:1" json:"user_id"`
	PartnerID uint64    `gorm:"column:partner_id;not null;uniqueIndex:uk_user_partner,priority:2" json:"partner_id"`
	Category  string    `gorm:"column:category;size:16;not null" json:"category"` // executive | core
	IsActive  bool      `gorm:"column:is_active;not null;default:1;index" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserCommissionLink) TableName() string { return "iso_commission_link" }
