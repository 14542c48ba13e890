package helper

import (
	"campus_cms/constants"
	"campus_cms/model"
	"testing"
	"time"

	"gorm.io/gorm"
)

func seedEvent(t *testing.T, db *gorm.DB, slug, status string, start time.Time, end *time.Time) *model.Event {
	t.Helper()
	event := &model.Event{
		TitleZh:   "活动",
		TitleEn:   "Event " + slug,
		Slug:      slug,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func eventStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var event model.Event
	if err := db.First(&event, id).Error; err != nil {
		t.Fatalf("load event: %v", err)
	}
	return event.Status
}

func TestAutoUpdateEventStatus(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	started := seedEvent(t, db, "started", constants.EVENT_UPCOMING, now.Add(-time.Hour), nil)
	future := seedEvent(t, db, "future", constants.EVENT_UPCOMING, now.Add(48*time.Hour), nil)

	pastEnd := now.Add(-time.Hour)
	finished := seedEvent(t, db, "finished", constants.EVENT_ONGOING, now.Add(-6*time.Hour), &pastEnd)

	openEnd := now.Add(2 * time.Hour)
	running := seedEvent(t, db, "running", constants.EVENT_ONGOING, now.Add(-time.Hour), &openEnd)

	AutoUpdateEventStatus()

	if got := eventStatus(t, db, started.ID); got != constants.EVENT_ONGOING {
		t.Errorf("started event: expected ONGOING, got %s", got)
	}
	if got := eventStatus(t, db, future.ID); got != constants.EVENT_UPCOMING {
		t.Errorf("future event: expected UPCOMING, got %s", got)
	}
	if got := eventStatus(t, db, finished.ID); got != constants.EVENT_ENDED {
		t.Errorf("finished event: expected ENDED, got %s", got)
	}
	if got := eventStatus(t, db, running.ID); got != constants.EVENT_ONGOING {
		t.Errorf("running event: expected ONGOING, got %s", got)
	}
}

func TestAutoUpdateEventStatusDefaultsEndToStartDay(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	// No end time: an ONGOING event falls to ENDED once the start day passes.
	stale := seedEvent(t, db, "stale", constants.EVENT_ONGOING, now.Add(-30*time.Hour), nil)

	AutoUpdateEventStatus()

	if got := eventStatus(t, db, stale.ID); got != constants.EVENT_ENDED {
		t.Errorf("stale event: expected ENDED, got %s", got)
	}
}
