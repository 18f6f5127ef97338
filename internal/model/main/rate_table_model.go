package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRateTable 供应商成本费率表（版本链的一个节点，只增不改）
type SupplierRateTable struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	SupplierID uint64    `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	CategoryID uint64    `gorm:"column:category_id;not null;index" json:"category_id"`
	Version    int       `gorm:"column:version;not null;default:1" json:"version"`
	ParentID   *uint64   `gorm:"column:parent_id" json:"parent_id"`
	IsCurrent  bool      `gorm:"column:is_current;not null;default:0;index" json:"is_current"`
	CreatedBy  uint64    `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SupplierRateTable) TableName() string { return "iso_rate_table" }

// RateCell 费率表单元格，按 (brand, modality, channel) 唯一
type RateCell struct {
	ID          uint64          `gorm:"column:id;primaryKey" json:"id"`
	RateTableID uint64          `gorm:"column:rate_table_id;not null;uniqueIndex:uk_cell,priority:1" json:"rate_table_id"`
	Brand       string          `gorm:"column:brand;size:20;not null;uniqueIndex:uk_cell,priority:2" json:"brand"`
	Modality    string          `gorm:"column:modality;size:30;not null;uniqueIndex:uk_cell,priority:3" json:"modality"`
	Channel     string          `gorm:"column:channel;size:20;not null;uniqueIndex:uk_cell,priority:4" json:"channel"`
	PercentFee  decimal.Decimal `gorm:"column:percent_fee;type:decimal(18,4);not null;default:0" json:"percent_fee"`
	FixedFee    decimal.Decimal `gorm:"column:fixed_fee;type:decimal(18,2);not null;default:0" json:"fixed_fee"`
}

func (RateCell) TableName() string { return "iso_rate_cell" }

// CategoryRateBinding 把费率表挂到 (供应商, 商户类目)，status 走校验状态机
type CategoryRateBinding struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"id"`
	SupplierID  uint64    `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	CategoryID  uint64    `gorm:"column:category_id;not null;index" json:"category_id"`
	RateTableID *uint64   `gorm:"column:rate_table_id" json:"rate_table_id"` // current exposed version
	Status      string    `gorm:"column:status;size:24;not null;default:draft" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CategoryRateBinding) TableName() string { return "iso_category_binding" }
