package helper

import (
	"campus_cms/constants"
	"campus_cms/model"
)

// Can is the single place the admin-bypass rule lives. Admin passes every
// capability check regardless of stored flags; everyone else gets exactly
// the flag snapshotted into their session. Unknown capabilities fail closed.
func Can(claims *model.SessionClaims, capability string) bool {
	if claims == nil {
		return false
	}
	if claims.Role == constants.ROLE_ADMIN {
		return true
	}
	switch capability {
	case constants.CAP_MANAGE_EVENTS:
		return claims.CanManageEvents
	case constants.CAP_MANAGE_STAFF:
		return claims.CanManageStaff
	case constants.CAP_REVIEW_PROFILES:
		return claims.CanReviewProfiles
	}
	return false
}

// CanAccount applies the same rule to a live account record instead of a
// session snapshot. Mutations with irreversible effect (account creation,
// permission changes, deletion) go through this, so a capability revoked
// mid-session takes effect immediately for those operations.
func CanAccount(account *model.Account, capability string) bool {
	if account == nil || !account.IsActive {
		return false
	}
	return Can(&model.SessionClaims{
		Role:              account.Role,
		CanManageEvents:   account.CanManageEvents,
		CanManageStaff:    account.CanManageStaff,
		CanReviewProfiles: account.CanReviewProfiles,
	}, capability)
}
