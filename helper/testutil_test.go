package helper

import (
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB swaps the global DB for a unique in-memory sqlite database and
// installs a deterministic test config.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Account{},
		&model.Profile{},
		&model.ProfileHistory{},
		&model.Event{},
		&model.PasswordResetToken{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	database.Redis = nil
	config.SetForTest(config.App{
		JWTSecret:       "test-secret",
		TokenTTL:        7 * 24 * time.Hour,
		OrgMailDomain:   "org.edu",
		DefaultPassword: "changeme123",
		PublicBaseURL:   "http://localhost:8002",
	})
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, username, password, role string, mutate func(*model.Account)) *model.Account {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	account := &model.Account{
		Username: username,
		Email:    username + "@org.edu",
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if mutate != nil {
		mutate(account)
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("seed account %s: %v", username, err)
	}
	return account
}

func submitInput() *model.SubmitProfileInput {
	return &model.SubmitProfileInput{
		NameZh:     "张伟",
		NameEn:     "Zhang Wei",
		PositionZh: "讲师",
		PositionEn: "Lecturer",
		Department: "Computer Science",
		BioEn:      "Teaches systems programming.",
	}
}

func mustSubmit(t *testing.T, accountId uint, actor string) *model.Profile {
	t.Helper()
	profile, err := SubmitProfile(accountId, actor, submitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return profile
}

func mustReview(t *testing.T, profileId uint, reviewer, status string, order *int, note *string) *model.Profile {
	t.Helper()
	profile, err := ReviewProfile(profileId, reviewer, &model.ReviewProfileInput{
		Status:       status,
		DisplayOrder: order,
		Note:         note,
	})
	if err != nil {
		t.Fatalf("review %s: %v", status, err)
	}
	return profile
}

func historyCount(t *testing.T, db *gorm.DB, accountId uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.ProfileHistory{}).Where("account_id = ?", accountId).Count(&count).Error; err != nil {
		t.Fatalf("count history: %v", err)
	}
	return count
}

func checkVisibilityInvariant(t *testing.T, p *model.Profile) {
	t.Helper()
	if (p.Status == constants.PROFILE_APPROVED) != p.IsVisible {
		t.Fatalf("visibility invariant broken: status=%s isVisible=%v", p.Status, p.IsVisible)
	}
}
