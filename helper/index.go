package helper

import (
	"campus_cms/apperr"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByID(id uint) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.NOT_FOUND_RECORDS)
		}
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return &account, nil
}

// GetClaims returns the decoded session claims stashed by middleware.Protected.
func GetClaims(c *fiber.Ctx) (*model.SessionClaims, bool) {
	claims, ok := c.Locals("claims").(*model.SessionClaims)
	return claims, ok
}

// GetLiveAccount re-hydrates the acting account from the store. Used where
// the session snapshot must not be trusted: the account may have been
// deactivated or stripped of a capability after the token was issued.
func GetLiveAccount(c *fiber.Ctx) (*model.Account, error) {
	claims, ok := GetClaims(c)
	if !ok {
		return nil, apperr.Authentication(constants.INVALID_SESSION)
	}
	account, err := GetAccountByID(claims.AccountId)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.Authentication(constants.INVALID_SESSION)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, apperr.Authentication(constants.INVALID_SESSION)
	}
	return account, nil
}
