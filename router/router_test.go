package router_test

import (
	"bytes"
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/helper"
	"campus_cms/model"
	"campus_cms/router"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()
	router.SetupRoutes(app)
	return app, db
}

func seedAccountWithToken(t *testing.T, db *gorm.DB, username, role string, mutate func(*model.Account)) (*model.Account, string) {
	t.Helper()
	hash, err := helper.HashPassword("s3cretpw")
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
		t.Fatalf("seed: %v", err)
	}
	token, err := helper.IssueToken(account)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return account, token
}

func jsonRequest(method, target string, payload any, token string) *http.Request {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestLoginRoute(t *testing.T) {
	app, db := setupApp(t)
	seedAccountWithToken(t, db, "alice", constants.ROLE_STAFF, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login", fiber.Map{
		"identifier": "alice",
		"password":   "s3cretpw",
	}, ""))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Token   string `json:"token"`
		Account struct {
			Role string `json:"role"`
		} `json:"account"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Token == "" || payload.Account.Role != constants.ROLE_STAFF {
		t.Fatalf("login payload incomplete: %+v", payload)
	}

	claims, err := helper.DecodeToken(payload.Token)
	if err != nil {
		t.Fatalf("returned token does not decode: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestLoginRouteRejectsBadPassword(t *testing.T) {
	app, db := setupApp(t)
	seedAccountWithToken(t, db, "alice", constants.ROLE_STAFF, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login", fiber.Map{
		"identifier": "alice",
		"password":   "wrong",
	}, ""))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

// A staff session without manageStaff must not create accounts, and an admin
// role must pass with every flag unset.
func TestCreateAccountAuthorization(t *testing.T) {
	app, db := setupApp(t)
	_, staffToken := seedAccountWithToken(t, db, "staffer", constants.ROLE_STAFF, nil)
	_, adminToken := seedAccountWithToken(t, db, "boss", constants.ROLE_ADMIN, nil)

	input := fiber.Map{"username": "newbie", "email": "newbie@org.edu"}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/account/", input, staffToken))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("staff without manageStaff: expected 403, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/account/", input, adminToken))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin: expected 201, got %d", resp.StatusCode)
	}
}

// The live re-check wins over a stale capability snapshot for sensitive
// operations: a flag revoked after issuance blocks account creation even
// though the token still carries it.
func TestLiveCheckOverridesStaleClaims(t *testing.T) {
	app, db := setupApp(t)
	manager, managerToken := seedAccountWithToken(t, db, "manager", constants.ROLE_STAFF, func(a *model.Account) {
		a.CanManageStaff = true
	})

	if err := db.Model(&model.Account{}).Where("id = ?", manager.ID).Update("can_manage_staff", false).Error; err != nil {
		t.Fatalf("revoke: %v", err)
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/account/", fiber.Map{
		"username": "newbie", "email": "newbie@org.edu",
	}, managerToken))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("revoked flag must fail the live re-check, got %d", resp.StatusCode)
	}
}

// Deactivation is not subject to the token-snapshot staleness window: an
// unexpired token stops working the moment the account goes inactive.
func TestDeactivatedAccountLosesAccess(t *testing.T) {
	app, db := setupApp(t)
	account, token := seedAccountWithToken(t, db, "alice", constants.ROLE_STAFF, func(a *model.Account) {
		a.CanReviewProfiles = true
	})

	if err := db.Model(&model.Account{}).Where("id = ?", account.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/profile/", fiber.Map{
		"nameZh":     "张伟",
		"nameEn":     "Zhang Wei",
		"positionZh": "讲师",
		"positionEn": "Lecturer",
		"department": "Computer Science",
	}, token))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("deactivated submit: expected 401, got %d", resp.StatusCode)
	}

	var count int64
	if err := db.Model(&model.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("deactivated account created a profile row")
	}

	// Snapshot-gated reads are cut off too.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/review/", nil, token))
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("deactivated queue read: expected 401, got %d", resp.StatusCode)
	}
}

func TestModerationFeedRequiresReviewer(t *testing.T) {
	app, db := setupApp(t)
	_, plainToken := seedAccountWithToken(t, db, "plain", constants.ROLE_STAFF, nil)
	_, reviewerToken := seedAccountWithToken(t, db, "reviewer", constants.ROLE_STAFF, func(a *model.Account) {
		a.CanReviewProfiles = true
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/review/ws", nil, ""))
	if err != nil {
		t.Fatalf("anonymous: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous feed: expected 401, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/review/ws", nil, plainToken))
	if err != nil {
		t.Fatalf("non-reviewer: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-reviewer feed: expected 403, got %d", resp.StatusCode)
	}

	// Authorized but not a websocket upgrade.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/review/ws", nil, reviewerToken))
	if err != nil {
		t.Fatalf("plain http: %v", err)
	}
	if resp.StatusCode != http.StatusUpgradeRequired {
		t.Fatalf("plain http feed: expected 426, got %d", resp.StatusCode)
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/account/me", nil, ""))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSubmitAndModerationFlow(t *testing.T) {
	app, db := setupApp(t)
	_, ownerToken := seedAccountWithToken(t, db, "alice", constants.ROLE_STAFF, nil)
	_, reviewerToken := seedAccountWithToken(t, db, "reviewer", constants.ROLE_STAFF, func(a *model.Account) {
		a.CanReviewProfiles = true
	})

	submit := fiber.Map{
		"nameZh":     "张伟",
		"nameEn":     "Zhang Wei",
		"positionZh": "讲师",
		"positionEn": "Lecturer",
		"department": "Computer Science",
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/profile/", submit, ownerToken))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", resp.StatusCode)
	}

	// Pending profiles stay out of the public directory.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/directory/", nil, ""))
	if err != nil {
		t.Fatalf("directory: %v", err)
	}
	var listing struct {
		Data []model.Profile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("decode directory: %v", err)
	}
	if len(listing.Data) != 0 {
		t.Fatalf("pending profile leaked into directory: %+v", listing.Data)
	}

	var profile model.Profile
	if err := db.First(&profile).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}

	// Owner cannot review without the capability.
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/v1/review/1", fiber.Map{"status": "APPROVED"}, ownerToken))
	if err != nil {
		t.Fatalf("review as owner: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("owner review: expected 403, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/v1/review/1", fiber.Map{
		"status":       "APPROVED",
		"displayOrder": 1,
	}, reviewerToken))
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("review: expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/directory/?department=Computer+Science", nil, ""))
	if err != nil {
		t.Fatalf("directory: %v", err)
	}
	listing.Data = nil
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("decode directory: %v", err)
	}
	if len(listing.Data) != 1 || listing.Data[0].ID != profile.ID {
		t.Fatalf("approved profile missing from directory: %+v", listing.Data)
	}
}

func TestEventRoutes(t *testing.T) {
	app, db := setupApp(t)
	_, plainToken := seedAccountWithToken(t, db, "plain", constants.ROLE_STAFF, nil)
	_, editorToken := seedAccountWithToken(t, db, "editor", constants.ROLE_STAFF, func(a *model.Account) {
		a.CanManageEvents = true
	})

	input := fiber.Map{
		"titleZh":   "开放日",
		"titleEn":   "Open Day",
		"startTime": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/event/", input, plainToken))
	if err != nil {
		t.Fatalf("create as plain: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("plain staff: expected 403, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/event/", input, editorToken))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}

	var event model.Event
	if err := db.First(&event).Error; err != nil {
		t.Fatalf("load event: %v", err)
	}
	if event.Slug != "open-day" {
		t.Fatalf("slug not generated: %q", event.Slug)
	}
	if event.Status != constants.EVENT_UPCOMING {
		t.Fatalf("new events start upcoming, got %s", event.Status)
	}

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/event/open-day", nil, ""))
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("detail: expected 200, got %d", resp.StatusCode)
	}
}
