package helper

import (
	"campus_cms/constants"
	"campus_cms/model"
	"testing"
)

func TestCanAdminBypassesEverything(t *testing.T) {
	claims := &model.SessionClaims{Role: constants.ROLE_ADMIN}

	for _, capability := range []string{
		constants.CAP_MANAGE_EVENTS,
		constants.CAP_MANAGE_STAFF,
		constants.CAP_REVIEW_PROFILES,
	} {
		if !Can(claims, capability) {
			t.Errorf("admin denied %s despite bypass rule", capability)
		}
	}
}

func TestCanFollowsFlagsForStaff(t *testing.T) {
	claims := &model.SessionClaims{
		Role:              constants.ROLE_STAFF,
		CanManageEvents:   true,
		CanReviewProfiles: false,
	}

	if !Can(claims, constants.CAP_MANAGE_EVENTS) {
		t.Error("manageEvents flag set but denied")
	}
	if Can(claims, constants.CAP_MANAGE_STAFF) {
		t.Error("manageStaff flag unset but allowed")
	}
	if Can(claims, constants.CAP_REVIEW_PROFILES) {
		t.Error("reviewProfiles flag unset but allowed")
	}
}

func TestCanUnknownCapabilityFailsClosed(t *testing.T) {
	admin := &model.SessionClaims{Role: constants.ROLE_ADMIN}
	staff := &model.SessionClaims{Role: constants.ROLE_STAFF, CanManageEvents: true, CanManageStaff: true, CanReviewProfiles: true}

	if !Can(admin, "whatever") {
		t.Error("admin bypass applies before the capability switch")
	}
	if Can(staff, "whatever") {
		t.Error("unknown capability must be denied for non-admins")
	}
	if Can(nil, constants.CAP_MANAGE_EVENTS) {
		t.Error("nil claims must be denied")
	}
}

func TestCanAccountRespectsActive(t *testing.T) {
	account := &model.Account{Role: constants.ROLE_ADMIN, IsActive: false}
	if CanAccount(account, constants.CAP_MANAGE_STAFF) {
		t.Error("inactive account must fail every capability check")
	}

	account.IsActive = true
	if !CanAccount(account, constants.CAP_MANAGE_STAFF) {
		t.Error("active admin should pass")
	}
}
