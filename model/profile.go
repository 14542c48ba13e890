package model

import "time"

// Profile is the self-submitted directory entry, at most one per account.
// Status and IsVisible are only ever written together: IsVisible is true
// exactly when Status is APPROVED.
type Profile struct {
	DTO
	AccountId    uint       `gorm:"uniqueIndex;not null" json:"accountId"`
	NameZh       string     `gorm:"not null" json:"nameZh"`
	NameEn       string     `gorm:"not null" json:"nameEn"`
	PositionZh   string     `gorm:"not null" json:"positionZh"`
	PositionEn   string     `gorm:"not null" json:"positionEn"`
	Department   string     `gorm:"not null;index" json:"department"`
	BioZh        string     `json:"bioZh"`
	BioEn        string     `json:"bioEn"`
	Avatar       string     `json:"avatar"`
	ContactEmail string     `json:"contactEmail"`
	ContactPhone string     `json:"contactPhone"`
	Office       string     `json:"office"`
	Status       string     `gorm:"not null;default:PENDING;index" json:"status"`
	IsVisible    bool       `gorm:"not null;default:false" json:"isVisible"`
	DisplayOrder int        `gorm:"not null;default:0" json:"displayOrder"`
	ReviewNote   string     `json:"reviewNote"`
	ReviewedAt   *time.Time `json:"reviewedAt"`
	ReviewedBy   string     `json:"reviewedBy"`
}

type Profiles []Profile

// ProfileHistory is append-only: one row per submission and per review
// decision, carrying a JSON snapshot of the profile after the transition.
type ProfileHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	AccountId uint      `gorm:"index;not null" json:"accountId"`
	Action    string    `gorm:"not null" json:"action"`
	Snapshot  string    `gorm:"type:text;not null" json:"snapshot"`
	Actor     string    `gorm:"not null" json:"actor"`
	Note      string    `json:"note"`
}

type SubmitProfileInput struct {
	NameZh       string `json:"nameZh" validate:"required"`
	NameEn       string `json:"nameEn" validate:"required"`
	PositionZh   string `json:"positionZh" validate:"required"`
	PositionEn   string `json:"positionEn" validate:"required"`
	Department   string `json:"department" validate:"required"`
	BioZh        string `json:"bioZh"`
	BioEn        string `json:"bioEn"`
	Avatar       string `json:"avatar"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Office       string `json:"office"`
}

type ReviewProfileInput struct {
	Status       string  `json:"status" validate:"required"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	Note         *string `json:"note,omitempty"`
}

type FilterProfile struct {
	Pagination
	Status     *string `json:"status"`
	Department *string `json:"department"`
	SearchKey  string  `json:"searchKey"`
}
