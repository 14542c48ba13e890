package helper

import (
	"campus_cms/apperr"
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session issuer. Tokens are self-contained: decoding is a pure function of
// the secret and the token, there is no server-side session store and no
// revocation list. Logout is a client-side discard.

func IssueToken(account *model.Account) (string, error) {
	app := config.Current()
	now := time.Now()

	claims := model.SessionClaims{
		AccountId:         account.ID,
		Username:          account.Username,
		Email:             account.Email,
		Role:              account.Role,
		CanManageEvents:   account.CanManageEvents,
		CanManageStaff:    account.CanManageStaff,
		CanReviewProfiles: account.CanReviewProfiles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(app.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(app.JWTSecret))
	if err != nil {
		return "", apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return signed, nil
}

// DecodeToken verifies signature and expiry. Malformed, expired and
// badly-signed tokens are indistinguishable to callers on purpose.
func DecodeToken(raw string) (*model.SessionClaims, error) {
	app := config.Current()

	parsed, err := jwt.ParseWithClaims(raw, &model.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Authentication(constants.INVALID_SESSION)
		}
		return []byte(app.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.Authentication(constants.INVALID_SESSION)
	}
	claims, ok := parsed.Claims.(*model.SessionClaims)
	if !ok {
		return nil, apperr.Authentication(constants.INVALID_SESSION)
	}
	return claims, nil
}
