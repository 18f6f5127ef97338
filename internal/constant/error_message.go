package constant

// ErrorMessages 错误码对应的提示信息
var ErrorMessages = map[int]string{
	CodeSuccess:     "success",
	CodeSystemError: "internal server error",
	CodeDBError:     "database operation failed",
	CodeCacheError:  "cache operation failed",
	CodeLockError:   "could not acquire job lock, another run in progress",
	CodeMQError:     "event publish failed",
	CodeParamError:  "invalid request parameters",

	CodeUnauthorized:   "missing or invalid credentials",
	CodeRoleDenied:     "actor role not allowed for this operation",
	CodeActorForbidden: "actor may not operate on this partner",

	CodeInvalidMargin:      "margin percent must be between 0 and 100",
	CodeMissingRateTable:   "binding has no supplier rate table, cannot submit",
	CodeReasonRequired:     "a reason is required to reject",
	CodeInvalidPeriod:      "month must be 1-12 and year a plausible calendar year",
	CodeInvalidValidity:    "valid_until must not be earlier than valid_from",
	CodeInvalidRateResult:  "resulting final rate falls outside 0-100 percent",
	CodeInvalidCandidate:   "rate candidate rejected by validation",
	CodeInvalidCellKey:     "unknown brand/modality/channel combination",
	CodeInvalidCategory:    "commission category must be executive or core",
	CodeBindingNotApproved: "category binding must be approved before linking",

	CodeInvalidTransition: "transition not allowed from current status",

	CodeRateTableNotFound:  "supplier rate table not found",
	CodeBindingNotFound:    "category rate binding not found",
	CodeLinkNotFound:       "partner rate link not found",
	CodePartnerNotFound:    "partner not found",
	CodeMarginNotFound:     "platform margin config not found for partner",
	CodeCellNotFound:       "no supplier cost cell for the requested key",
	CodeOverrideNotFound:   "rate override not found",
	CodeSettlementNotFound: "monthly settlement not found",

	CodeDuplicateSettlement: "settlement already consolidated for this period",
	CodeDuplicateLink:       "partner already linked to this binding",
	CodeVersionNotCurrent:   "rate table is not the current version of its chain",
	CodeNoPendingVersion:    "link has no pending version to apply",

	CodeOCRServiceError: "rate candidate extractor unavailable",
	CodeTxnSourceError:  "transaction aggregate source unavailable",
}
