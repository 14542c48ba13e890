package helper

import (
	"campus_cms/apperr"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Moderation engine. Every transition writes the profile state and exactly
// one history entry inside one transaction, so the audit trail is a complete
// reconstructable timeline: a history row never exists without its state
// change having landed, and vice versa.

func snapshotProfile(p *model.Profile) string {
	raw, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func appendHistory(tx *gorm.DB, p *model.Profile, action, actor, note string) error {
	entry := model.ProfileHistory{
		AccountId: p.AccountId,
		Action:    action,
		Snapshot:  snapshotProfile(p),
		Actor:     actor,
		Note:      note,
	}
	return tx.Create(&entry).Error
}

func validateSubmission(input *model.SubmitProfileInput) error {
	if input.NameZh == "" || input.NameEn == "" ||
		input.PositionZh == "" || input.PositionEn == "" ||
		input.Department == "" {
		return apperr.Validation(constants.ERROR_INPUT)
	}
	return nil
}

// SubmitProfile is the owner-side transition: it creates the profile on first
// submission and otherwise overwrites the content fields. Either way the
// profile re-enters moderation — status drops to PENDING and visibility to
// false, even when it was APPROVED a moment ago. ReviewNote and the previous
// review stamps survive until a reviewer overwrites them.
func SubmitProfile(accountId uint, actor string, input *model.SubmitProfileInput) (*model.Profile, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	var profile model.Profile
	action := constants.HISTORY_UPDATED
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("account_id = ?", accountId).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			action = constants.HISTORY_CREATED
			profile = model.Profile{AccountId: accountId}
		} else if err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
		}

		profile.NameZh = input.NameZh
		profile.NameEn = input.NameEn
		profile.PositionZh = input.PositionZh
		profile.PositionEn = input.PositionEn
		profile.Department = input.Department
		profile.BioZh = input.BioZh
		profile.BioEn = input.BioEn
		profile.Avatar = input.Avatar
		profile.ContactEmail = input.ContactEmail
		profile.ContactPhone = input.ContactPhone
		profile.Office = input.Office
		profile.Status = constants.PROFILE_PENDING
		profile.IsVisible = false

		if err := tx.Save(&profile).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
		}
		if err := appendHistory(tx, &profile, action, actor, ""); err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateDirectoryCache()
	PublishModeration(profile.AccountId, action)
	return &profile, nil
}

// ReviewProfile is the reviewer-side transition. APPROVED couples visibility
// on and stamps reviewedAt/reviewedBy; REJECTED couples visibility off and
// stamps the same; PENDING is "no decision yet" and deliberately leaves the
// previous review stamps untouched.
func ReviewProfile(profileId uint, reviewer string, input *model.ReviewProfileInput) (*model.Profile, error) {
	if !utilsIsProfileStatus(input.Status) {
		return nil, apperr.Validation(constants.STATUS_NOT_EXISTS)
	}

	var profile model.Profile
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, profileId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(constants.NOT_FOUND_RECORDS)
			}
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
		}

		profile.Status = input.Status
		profile.IsVisible = input.Status == constants.PROFILE_APPROVED
		if input.Status != constants.PROFILE_PENDING {
			now := time.Now()
			profile.ReviewedAt = &now
			profile.ReviewedBy = reviewer
		}
		if input.DisplayOrder != nil {
			profile.DisplayOrder = *input.DisplayOrder
		}
		note := ""
		if input.Note != nil {
			profile.ReviewNote = *input.Note
			note = *input.Note
		}

		if err := tx.Save(&profile).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
		}
		if err := appendHistory(tx, &profile, historyActionForStatus(input.Status), reviewer, note); err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateDirectoryCache()
	return &profile, nil
}

func historyActionForStatus(status string) string {
	switch status {
	case constants.PROFILE_APPROVED:
		return constants.HISTORY_APPROVED
	case constants.PROFILE_REJECTED:
		return constants.HISTORY_REJECTED
	default:
		return constants.HISTORY_PENDING
	}
}

func utilsIsProfileStatus(status string) bool {
	for _, s := range constants.PROFILE_STATUS {
		if s == status {
			return true
		}
	}
	return false
}

// VisibleProfiles is the directory projection: approved, visible profiles
// ordered by displayOrder then id. It never mutates and never widens past the
// visibility invariant; the reviewer queue goes through its own accessor.
func VisibleProfiles(department string) (model.Profiles, error) {
	db := database.DB.Model(&model.Profile{}).
		Where("status = ? AND is_visible = ?", constants.PROFILE_APPROVED, true)
	if department != "" {
		db = db.Where("department = ?", department)
	}

	var profiles model.Profiles
	if err := db.Order("display_order ASC, id ASC").Find(&profiles).Error; err != nil {
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return profiles, nil
}

// GetProfileByAccount returns the owner's profile, created or not.
func GetProfileByAccount(accountId uint) (*model.Profile, error) {
	var profile model.Profile
	if err := database.DB.Where("account_id = ?", accountId).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constants.PROFILE_NOT_SUBMITTED)
		}
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return &profile, nil
}

// ProfileHistoryFor returns the append-only timeline, oldest first.
func ProfileHistoryFor(accountId uint) ([]model.ProfileHistory, error) {
	var entries []model.ProfileHistory
	if err := database.DB.Where("account_id = ?", accountId).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR, err)
	}
	return entries, nil
}
