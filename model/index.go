package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionClaims is the decoded token payload: a point-in-time snapshot of
// identity and capability flags taken at issuance. A flag revoked later stays
// effective inside an unexpired token; security-sensitive mutations re-check
// the live account instead of trusting this snapshot.
type SessionClaims struct {
	AccountId         uint   `json:"accountId"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	CanManageEvents   bool   `json:"canManageEvents"`
	CanManageStaff    bool   `json:"canManageStaff"`
	CanReviewProfiles bool   `json:"canReviewProfiles"`
	jwt.RegisteredClaims
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}

type ArrayId struct {
	IDs []uint `json:"ids"`
}

type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	AccountId uint      `gorm:"index;not null" json:"accountId"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
}
