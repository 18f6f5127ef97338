package constant

// 业务级错误码 (2xxx)

// Error kinds, one per code range.
const (
	KindSystem            = "system"
	KindAuthorization     = "authorization"
	KindValidation        = "validation"
	KindInvalidTransition = "invalid_transition"
	KindNotFound          = "not_found"
	KindConflict          = "conflict"
	KindExternalService   = "external_service"
)

// 授权相关错误码
const (
	CodeUnauthorized   = 2000 // missing or invalid actor token
	CodeRoleDenied     = 2001 // actor role not allowed for this operation
	CodeActorForbidden = 2002 // actor may not act on this partner
)

// 校验相关错误码
const (
	CodeInvalidMargin      = 2100 // margin percent outside [0,100]
	CodeMissingRateTable   = 2101 // binding has no supplier rate table
	CodeReasonRequired     = 2102 // reject requires a reason
	CodeInvalidPeriod      = 2103 // month/year out of range
	CodeInvalidValidity    = 2104 // valid_until earlier than valid_from
	CodeInvalidRateResult  = 2105 // cascade result outside [0,100]
	CodeInvalidCandidate   = 2106 // OCR rate candidate failed validation
	CodeInvalidCellKey     = 2107 // unknown brand/modality/channel combination
	CodeInvalidCategory    = 2108 // commission category is neither executive nor core
	CodeBindingNotApproved = 2109 // binding must be approved before partners link to it
)

// 状态机相关错误码
const (
	CodeInvalidTransition = 2200 // requested transition not allowed from current status
)

// 未找到相关错误码
const (
	CodeRateTableNotFound  = 2300
	CodeBindingNotFound    = 2301
	CodeLinkNotFound       = 2302
	CodePartnerNotFound    = 2303
	CodeMarginNotFound     = 2304 // platform margin config missing for partner
	CodeCellNotFound       = 2305 // no supplier cost cell for the requested key
	CodeOverrideNotFound   = 2306
	CodeSettlementNotFound = 2307
)

// 冲突相关错误码
const (
	CodeDuplicateSettlement = 2400 // settlement already exists for (user, partner, month, year)
	CodeDuplicateLink       = 2401 // partner already linked to this binding
	CodeVersionNotCurrent   = 2402 // createNewVersion called on a superseded table
	CodeNoPendingVersion    = 2403 // applyPendingVersion without a pending update
)

// 外部协作方错误码
const (
	CodeOCRServiceError = 2500 // rate candidate extractor failure
	CodeTxnSourceError  = 2501 // transaction aggregate query failure
)
