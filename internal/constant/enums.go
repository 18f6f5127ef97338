package constant

// Link / binding validation statuses.
const (
	StatusDraft             = "draft"
	StatusPendingValidation = "pending_validation"
	StatusApproved          = "approved"
	StatusRejected          = "rejected"
	StatusDeactivated       = "deactivated"
)

// Monthly settlement statuses.
const (
	SettleStatusPendingInvoice = "pending_invoice"
	SettleStatusAccumulated    = "accumulated"
	SettleStatusCarriedForward = "carried_forward"
)

// Notification types emitted by the core.
const (
	NotifyNewVersion     = "new_version"
	NotifyVersionApplied = "version_applied"
	NotifyExpiring30d    = "expiring_30d"
	NotifyExpiring7d     = "expiring_7d"
	NotifyExpired        = "expired"
	NotifySettlement     = "settlement_created"
)

// Actor roles, ordered by privilege.
const (
	RoleOperator = "operator"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Commission categories for user payout links.
const (
	CommissionExecutive = "executive"
	CommissionCore      = "core"
)

// BrandAll is the pseudo-brand used for cells that are not billed per
// card brand: PIX and antecipação.
const BrandAll = "ALL"

// Common modalities. Stored as free strings; these are the ones the
// platform publishes today.
const (
	ModalityDebit       = "debit"
	ModalityCredit      = "credit"
	ModalityCreditInst  = "credit_installments"
	ModalityPix         = "pix"
	ModalityAntecipacao = "antecipacao"
)

// Channels.
const (
	ChannelPOS    = "pos"
	ChannelOnline = "online"
)
