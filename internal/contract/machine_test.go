package contract

import (
	"testing"

	"iso-rate-api/internal/constant"
)

func TestNextAllowedTransitions(t *testing.T) {
	cases := []struct {
		current, action, role, reason string
		want                          string
	}{
		{constant.StatusDraft, ActionSubmit, constant.RoleManager, "", constant.StatusPendingValidation},
		{constant.StatusRejected, ActionSubmit, constant.RoleAdmin, "", constant.StatusPendingValidation},
		{constant.StatusPendingValidation, ActionApprove, constant.RoleAdmin, "", constant.StatusApproved},
		{constant.StatusPendingValidation, ActionReject, constant.RoleAdmin, "cells missing", constant.StatusRejected},
		{constant.StatusApproved, ActionDeactivate, constant.RoleAdmin, "", constant.StatusDeactivated},
		{constant.StatusDeactivated, ActionReactivate, constant.RoleAdmin, "", constant.StatusApproved},
	}
	for _, c := range cases {
		got, err := Next(c.current, c.action, c.role, c.reason)
		if err != nil {
			t.Errorf("%s from %s: unexpected error %v", c.action, c.current, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s from %s = %s, want %s", c.action, c.current, got, c.want)
		}
	}
}

func TestNextInvalidTransition(t *testing.T) {
	// approve straight from draft must be refused
	_, err := Next(constant.StatusDraft, ActionApprove, constant.RoleAdmin, "")
	if err == nil {
		t.Fatal("approve from draft: want error")
	}
	if err.Kind() != constant.KindInvalidTransition {
		t.Errorf("kind = %s, want %s", err.Kind(), constant.KindInvalidTransition)
	}
}

func TestNextRoleGating(t *testing.T) {
	if _, err := Next(constant.StatusDraft, ActionSubmit, constant.RoleOperator, ""); err == nil {
		t.Error("submit as operator: want role denied")
	}
	// manager may submit but not approve
	if _, err := Next(constant.StatusPendingValidation, ActionApprove, constant.RoleManager, ""); err == nil {
		t.Error("approve as manager: want role denied")
	} else if err.Kind() != constant.KindAuthorization {
		t.Errorf("kind = %s, want %s", err.Kind(), constant.KindAuthorization)
	}
}

func TestNextRejectNeedsReason(t *testing.T) {
	_, err := Next(constant.StatusPendingValidation, ActionReject, constant.RoleAdmin, "")
	if err == nil {
		t.Fatal("reject without reason: want error")
	}
	if err.Code() != constant.CodeReasonRequired {
		t.Errorf("code = %d, want %d", err.Code(), constant.CodeReasonRequired)
	}
}

func TestNextUnknownAction(t *testing.T) {
	if _, err := Next(constant.StatusDraft, "archive", constant.RoleAdmin, ""); err == nil {
		t.Error("unknown action: want error")
	}
}
