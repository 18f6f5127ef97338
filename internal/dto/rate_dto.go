package dto

import "github.com/shopspring/decimal"

// RateTriple is the query-surface answer for one cell.
type RateTriple struct {
	BaseCostPercent      decimal.Decimal `json:"base_cost_percent"`
	BaseCostFixed        decimal.Decimal `json:"base_cost_fixed"`
	PartnerMarginPercent decimal.Decimal `json:"partner_margin_percent"`
	PartnerMarginFixed   decimal.Decimal `json:"partner_margin_fixed"`
	FinalRatePercent     decimal.Decimal `json:"final_rate_percent"`
	FinalRateFixed       decimal.Decimal `json:"final_rate_fixed"`
	Overridden           bool            `json:"overridden"`
}

type QueryRateReq struct {
	PartnerID uint64 `form:"partner_id" binding:"required"`
	Brand     string `form:"brand" binding:"required"`
	Modality  string `form:"modality" binding:"required"`
	Channel   string `form:"channel" binding:"required"`
}

type UpsertPartnerMarginReq struct {
	Brand      string `json:"brand" binding:"required"`
	Modality   string `json:"modality" binding:"required"`
	Channel    string `json:"channel" binding:"required"`
	PercentFee string `json:"percent_fee" binding:"required"`
	FixedFee   string `json:"fixed_fee"`
}

type UpsertPlatformMarginReq struct {
	MarginOutbank   string `json:"margin_outbank" binding:"required"`
	MarginExecutive string `json:"margin_executive" binding:"required"`
	MarginCore      string `json:"margin_core" binding:"required"`
}

type UpsertOverrideReq struct {
	Brand      string `json:"brand" binding:"required"`
	Modality   string `json:"modality" binding:"required"`
	Channel    string `json:"channel" binding:"required"`
	PercentFee string `json:"percent_fee" binding:"required"`
}

type RevertOverrideReq struct {
	Brand    string `json:"brand" binding:"required"`
	Modality string `json:"modality" binding:"required"`
	Channel  string `json:"channel" binding:"required"`
}

// RateCandidate is one untrusted OCR-extracted cell.
type RateCandidate struct {
	Brand      string `json:"brand"`
	Modality   string `json:"modality"`
	Channel    string `json:"channel"`
	PercentFee string `json:"percent_fee"`
	FixedFee   string `json:"fixed_fee"`
}

// ImportCandidatesReq creates a draft rate table from extracted cells.
type ImportCandidatesReq struct {
	SupplierID uint64          `json:"supplier_id" binding:"required"`
	CategoryID uint64          `json:"category_id" binding:"required"`
	Cells      []RateCandidate `json:"cells" binding:"required"`
}

type ImportCandidatesResp struct {
	BindingID   uint64   `json:"binding_id"`
	RateTableID uint64   `json:"rate_table_id"`
	Accepted    int      `json:"accepted"`
	Rejected    []string `json:"rejected,omitempty"`
}
