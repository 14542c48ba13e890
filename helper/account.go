package helper

import (
	"campus_cms/apperr"
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account store mutations. Callers must have passed a live capability check
// (middleware.RequireLiveCapability) before reaching these.

func CreateAccount(input *model.CreateAccountInput) (*model.Account, error) {
	db := database.DB

	password := input.Password
	if password == "" {
		password = config.Current().DefaultPassword
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(constants.CAN_NOT_HASH_PASSWORD, err)
	}

	role := input.Role
	if role == "" {
		role = constants.ROLE_STAFF
	}

	account := model.Account{
		Username:          input.Username,
		Email:             input.Email,
		Password:          hash,
		Role:              role,
		CanManageEvents:   input.CanManageEvents,
		CanManageStaff:    input.CanManageStaff,
		CanReviewProfiles: input.CanReviewProfiles,
		IsActive:          true,
	}
	// The unique indexes are the duplicate check; a pre-count would race
	// with concurrent inserts.
	if err := db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(constants.USERNAME_OR_EMAIL_EXISTS)
		}
		return nil, apperr.Internal(constants.ERROR_CREATE, err)
	}
	return &account, nil
}

func UpdateAccount(accountId uint, input *model.UpdateAccountInput) (*model.Account, error) {
	db := database.DB

	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.NOT_FOUND_RECORDS)
		}
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}

	updateMap := map[string]interface{}{}
	if input.Role != nil {
		updateMap["role"] = *input.Role
	}
	if input.CanManageEvents != nil {
		updateMap["can_manage_events"] = *input.CanManageEvents
	}
	if input.CanManageStaff != nil {
		updateMap["can_manage_staff"] = *input.CanManageStaff
	}
	if input.CanReviewProfiles != nil {
		updateMap["can_review_profiles"] = *input.CanReviewProfiles
	}
	if input.IsActive != nil {
		updateMap["is_active"] = *input.IsActive
	}
	if len(updateMap) == 0 {
		return &account, nil
	}

	if err := db.Model(&account).Updates(updateMap).Error; err != nil {
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	db.First(&account, accountId)
	return &account, nil
}

func ToggleActiveAccount(accountId uint, isActive bool) (*model.Account, error) {
	return UpdateAccount(accountId, &model.UpdateAccountInput{IsActive: &isActive})
}

// DeleteAccounts hard-deletes accounts; profiles and history follow through
// the FK cascade and an explicit sweep inside the same transaction.
func DeleteAccounts(ids []uint) error {
	if len(ids) == 0 {
		return apperr.Validation(constants.ERROR_INPUT)
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id IN ?", ids).Delete(&model.Profile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id IN ?", ids).Delete(&model.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Account{}, ids).Error
	})
	if err != nil {
		return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	InvalidateDirectoryCache()
	return nil
}

func ChangeOwnPassword(accountId uint, current, newPassword string) error {
	account, err := GetAccountByID(accountId)
	if err != nil {
		return err
	}
	if !CheckPasswordHash(current, account.Password) {
		return apperr.Validation(constants.CURRENT_PASSWORD_WRONG)
	}
	return setPassword(account, newPassword)
}

func AdminSetPassword(accountId uint, newPassword string) error {
	account, err := GetAccountByID(accountId)
	if err != nil {
		return err
	}
	return setPassword(account, newPassword)
}

func setPassword(account *model.Account, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(constants.CAN_NOT_HASH_PASSWORD, err)
	}
	if err := database.DB.Model(account).Update("password", hash).Error; err != nil {
		return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return nil
}

// CreateResetToken issues a single-use password reset token valid for an
// hour. Returns nothing when the email is unknown so the endpoint stays
// uniform to callers.
func CreateResetToken(email string) (*model.PasswordResetToken, *model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where("email = ? AND is_active = ?", email, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}

	token := model.PasswordResetToken{
		AccountId: account.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return &token, &account, nil
}

func ConsumeResetToken(raw, newPassword string) error {
	db := database.DB
	var token model.PasswordResetToken
	if err := db.Where("token = ?", raw).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation(constants.RESET_TOKEN_INVALID)
		}
		return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	if token.Used || time.Now().After(token.ExpiresAt) {
		return apperr.Validation(constants.RESET_TOKEN_INVALID)
	}

	account, err := GetAccountByID(token.AccountId)
	if err != nil {
		return err
	}
	if err := setPassword(account, newPassword); err != nil {
		return err
	}
	if err := db.Model(&token).Update("used", true).Error; err != nil {
		return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return nil
}
