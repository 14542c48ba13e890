package model

import "time"

type Event struct {
	DTO
	TitleZh       string     `gorm:"not null" json:"titleZh"`
	TitleEn       string     `gorm:"not null" json:"titleEn"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	DescriptionZh string     `json:"descriptionZh"`
	DescriptionEn string     `json:"descriptionEn"`
	Location      string     `json:"location"`
	Cover         string     `json:"cover"`
	StartTime     time.Time  `gorm:"not null" json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	Status        string     `gorm:"not null;default:UPCOMING;index" json:"status"`
}

type Events []Event

type CreateEventInput struct {
	TitleZh       string     `json:"titleZh" validate:"required"`
	TitleEn       string     `json:"titleEn" validate:"required"`
	DescriptionZh string     `json:"descriptionZh"`
	DescriptionEn string     `json:"descriptionEn"`
	Location      string     `json:"location"`
	Cover         string     `json:"cover"`
	StartTime     time.Time  `json:"startTime" validate:"required"`
	EndTime       *time.Time `json:"endTime"`
}

type UpdateEventInput struct {
	TitleZh       *string    `json:"titleZh,omitempty"`
	TitleEn       *string    `json:"titleEn,omitempty"`
	DescriptionZh *string    `json:"descriptionZh,omitempty"`
	DescriptionEn *string    `json:"descriptionEn,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Cover         *string    `json:"cover,omitempty"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"`
}

type FilterEvent struct {
	Pagination
	Status    *string `json:"status"`
	SearchKey string  `json:"searchKey"`
}
