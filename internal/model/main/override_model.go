package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Override history actions.
const (
	OverrideActionCreated  = "CREATED"
	OverrideActionUpdated  = "UPDATED"
	OverrideActionReverted = "REVERTED"
)

// RateOverride 合作方级别对计算结果的逐格覆盖，叠加在级联之后
type RateOverride struct {
	ID         uint64          `gorm:"column:id;primaryKey" json:"id"`
	LinkID     uint64          `gorm:"column:link_id;not null;uniqueIndex:uk_override,priority:1" json:"link_id"`
	Brand      string          `gorm:"column:brand;size:20;not null;uniqueIndex:uk_override,priority:2" json:"brand"`
	Modality   string          `gorm:"column:modality;size:30;not null;uniqueIndex:uk_override,priority:3" json:"modality"`
	Channel    string          `gorm:"column:channel;size:20;not null;uniqueIndex:uk_override,priority:4" json:"channel"`
	PercentFee decimal.Decimal `gorm:"column:percent_fee;type:decimal(18,4);not null" json:"percent_fee"`
	IsActive   bool            `gorm:"column:is_active;not null;default:1" json:"is_active"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RateOverride) TableName() string { return "iso_rate_override" }

// OverrideHistory 覆盖操作的追加日志
type OverrideHistory struct {
	ID         uint64           `gorm:"column:id;primaryKey" json:"id"`
	OverrideID uint64           `gorm:"column:override_id;not null;index" json:"override_id"`
	PrevValue  *decimal.Decimal `gorm:"column:prev_value;type:decimal(18,4)" json:"prev_value"`
	NewValue   *decimal.Decimal `gorm:"column:new_value;type:decimal(18,4)" json:"new_value"`
	Action     string           `gorm:"column:action;size:10;not null" json:"action"`
	ActorID    uint64           `gorm:"column:actor_id;not null" json:"actor_id"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OverrideHistory) TableName() string { return "iso_override_history" }

// Audited entity kinds; links and category bindings share the state
// machine and the audit trail.
const (
	AuditEntityLink    = "link"
	AuditEntityBinding = "binding"
)

// ContractAudit 状态机每次成功流转追加一行，永不修改
type ContractAudit struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	EntityType string    `gorm:"column:entity_type;size:10;not null;index:idx_audit_entity,priority:1" json:"entity_type"`
	EntityID   uint64    `gorm:"column:entity_id;not null;index:idx_audit_entity,priority:2" json:"entity_id"`
	PrevStatus string    `gorm:"column:prev_status;size:24;not null" json:"prev_status"`
	NewStatus  string    `gorm:"column:new_status;size:24;not null" json:"new_status"`
	ActorID    uint64    `gorm:"column:actor_id;not null" json:"actor_id"`
	Reason     string    `gorm:"column:reason;size:255" json:"reason"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContractAudit) TableName() string { return "iso_contract_audit" }
