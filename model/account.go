package model

import "time"

type Account struct {
	DTO
	Username          string     `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email             string     `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password          string     `gorm:"not null" json:"-"`
	Role              string     `gorm:"not null;default:STAFF" json:"role"`
	CanManageEvents   bool       `gorm:"not null;default:false" json:"canManageEvents"`
	CanManageStaff    bool       `gorm:"not null;default:false" json:"canManageStaff"`
	CanReviewProfiles bool       `gorm:"not null;default:false" json:"canReviewProfiles"`
	IsActive          bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin         *time.Time `json:"lastLogin"`
	Profile           *Profile   `gorm:"foreignKey:AccountId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"profile,omitempty"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username          string `json:"username" validate:"required,min=3,max=50"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"omitempty,min=6,max=50"`
	Role              string `json:"role" validate:"omitempty,oneof=STAFF ADMIN"`
	CanManageEvents   bool   `json:"canManageEvents"`
	CanManageStaff    bool   `json:"canManageStaff"`
	CanReviewProfiles bool   `json:"canReviewProfiles"`
}

type UpdateAccountInput struct {
	Role              *string `json:"role,omitempty" validate:"omitempty,oneof=STAFF ADMIN"`
	CanManageEvents   *bool   `json:"canManageEvents,omitempty"`
	CanManageStaff    *bool   `json:"canManageStaff,omitempty"`
	CanReviewProfiles *bool   `json:"canReviewProfiles,omitempty"`
	IsActive          *bool   `json:"isActive,omitempty"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}

type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type AdminChangePassword struct {
	AccountId      uint   `json:"accountId" validate:"required"`
	NewPassword    string `json:"newPassword" validate:"required,min=6,max=50"`
	RepeatPassword string `json:"repeatPassword" validate:"required"`
}

type StaffChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=50"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=50"`
}
