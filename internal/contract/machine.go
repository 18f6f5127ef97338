// Package contract holds the validation state machine for rate links
// and bindings. The transition table is data; persistence and audit
// writes live in the service layer.
package contract

import "iso-rate-api/internal/constant"

// Action names accepted on the mutation surface.
const (
	ActionSubmit     = "submit"
	ActionApprove    = "approve"
	ActionReject     = "reject"
	ActionDeactivate = "deactivate"
	ActionReactivate = "reactivate"
)

type rule struct {
	from    []string
	to      string
	minRole string
	// reject carries a mandatory reason
	needsReason bool
}

var rules = map[string]rule{
	ActionSubmit:     {from: []string{constant.StatusDraft, constant.StatusRejected}, to: constant.StatusPendingValidation, minRole: constant.RoleManager},
	ActionApprove:    {from: []string{constant.StatusPendingValidation}, to: constant.StatusApproved, minRole: constant.RoleAdmin},
	ActionReject:     {from: []string{constant.StatusPendingValidation}, to: constant.StatusRejected, minRole: constant.RoleAdmin, needsReason: true},
	ActionDeactivate: {from: []string{constant.StatusApproved}, to: constant.StatusDeactivated, minRole: constant.RoleAdmin},
	ActionReactivate: {from: []string{constant.StatusDeactivated}, to: constant.StatusApproved, minRole: constant.RoleAdmin},
}

var roleRank = map[string]int{
	constant.RoleOperator: 0,
	constant.RoleManager:  1,
	constant.RoleAdmin:    2,
}

// Next validates (current status, action, actor role, reason) and
// returns the target status. It never mutates anything; callers only
// persist when the error is nil.
func Next(current, action, role, reason string) (string, constant.Error) {
	r, ok := rules[action]
	if !ok {
		return "", constant.NewErrorf(constant.CodeInvalidTransition, "unknown action %q", action)
	}
	if roleRank[role] < roleRank[r.minRole] {
		return "", constant.NewErrorf(constant.CodeRoleDenied, "%s requires role %s", action, r.minRole)
	}
	if r.needsReason && reason == "" {
		return "", constant.NewError(constant.CodeReasonRequired)
	}
	for _, f := range r.from {
		if f == current {
			return r.to, nil
		}
	}
	return "", constant.NewErrorf(constant.CodeInvalidTransition, "%s not allowed from %s", action, current)
}
