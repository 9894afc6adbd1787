package authz

import (
	"qrfleet/internal/models/db_models"
	"qrfleet/pkg/utils"
)

type Action int

const (
	// ActionManageFleet covers create/update/delete of vehicles,
	// documents and events.
	ActionManageFleet Action = iota
	ActionListAccounts
	ActionReadAccount
	ActionCreateAccount
	ActionUpdateAccount
	ActionDeleteAccount
)

type rule struct {
	requireAdmin bool
	// allowSelf admits a non-admin caller whose own account is the target.
	allowSelf bool
	// forbidSelf rejects the caller's own account as target, for any role.
	forbidSelf bool
}

var policy = map[Action]rule{
	ActionManageFleet:   {},
	ActionListAccounts:  {requireAdmin: true},
	ActionReadAccount:   {},
	ActionCreateAccount: {requireAdmin: true},
	ActionUpdateAccount: {requireAdmin: true, allowSelf: true},
	ActionDeleteAccount: {requireAdmin: true, forbidSelf: true},
}

// Authorize evaluates the policy table for one request. The access gate
// has already checked authentication for gated routes; this re-checks it
// anyway so a handler wired outside the gate still fails closed.
func Authorize(s *Session, action Action, targetID string) error {
	if !s.Authenticated() {
		return utils.ErrAuthenticationRequired
	}

	r := policy[action]

	if r.requireAdmin && s.Role != db_models.RoleAdmin {
		if r.allowSelf && targetID != "" && s.AccountID == targetID {
			return nil
		}
		return utils.ErrAccessDenied
	}

	if r.forbidSelf && targetID != "" && s.AccountID == targetID {
		return utils.ErrSelfDelete
	}

	return nil
}

// CanAssignRole reports whether the caller may change role fields.
// Non-admin role input is dropped silently by the account service, so
// this never produces an error on its own.
func CanAssignRole(s *Session) bool {
	return s.Authenticated() && s.Role == db_models.RoleAdmin
}
