package helper

import (
	"campus_cms/apperr"
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// VerifyCredentials implements the credential verifier. The identifier may be
// a username, a full email, or a bare local part which is retried against the
// org mail domain ("alice" resolves to "alice@org.edu" when nothing matches
// the literal identifier). Only active accounts qualify.
//
// Unknown identifier, inactive account and wrong password are distinct kinds
// internally but share one user-facing message so callers cannot enumerate
// accounts.
func VerifyCredentials(identifier, password string) (*model.Account, error) {
	if identifier == "" || password == "" {
		return nil, apperr.Validation(constants.MISSING_LOGIN_INPUT)
	}

	account, err := findActiveAccount(identifier)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperr.Authentication(constants.INVALID_CREDENTIALS)
	}

	if !CheckPasswordHash(password, account.Password) {
		return nil, apperr.Authentication(constants.INVALID_CREDENTIALS)
	}

	// Best-effort: a failed lastLogin write never fails the login.
	now := time.Now()
	if err := database.DB.Model(account).Update("last_login", now).Error; err != nil {
		log.Printf("failed to update last_login for account %d: %v", account.ID, err)
	} else {
		account.LastLogin = &now
	}

	return account, nil
}

func findActiveAccount(identifier string) (*model.Account, error) {
	db := database.DB
	var account model.Account

	err := db.Where("(username = ? OR email = ?) AND is_active = ?", identifier, identifier, true).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}

	// Local-part convenience: only when the literal identifier matched nothing
	// and it is not already an address.
	if strings.Contains(identifier, "@") {
		return nil, nil
	}
	orgEmail := identifier + "@" + config.Current().OrgMailDomain
	err = db.Where("email = ? AND is_active = ?", orgEmail, true).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
}
