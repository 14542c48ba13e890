package helper

import (
	"campus_cms/constants"
	"campus_cms/database"
	"campus_cms/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var eventScheduler gocron.Scheduler

// AutoUpdateEventStatus advances event status by date: UPCOMING becomes
// ONGOING once the start time passes, ONGOING becomes ENDED after the end
// time (or after the start day when no end time is set).
func AutoUpdateEventStatus() {
	db := database.DB
	now := time.Now()

	var events []model.Event
	if err := db.Where("status <> ?", constants.EVENT_ENDED).Find(&events).Error; err != nil {
		log.Printf("event status sweep query failed: %v", err)
		return
	}

	for _, event := range events {
		updated := false

		if event.Status == constants.EVENT_UPCOMING && !now.Before(event.StartTime) {
			event.Status = constants.EVENT_ONGOING
			updated = true
		}

		end := event.StartTime.Add(24 * time.Hour)
		if event.EndTime != nil {
			end = *event.EndTime
		}
		if event.Status == constants.EVENT_ONGOING && now.After(end) {
			event.Status = constants.EVENT_ENDED
			updated = true
		}

		if updated {
			if err := db.Save(&event).Error; err != nil {
				log.Printf("failed to update status for event %q: %v", event.Slug, err)
			} else {
				log.Printf("event %q status -> %s", event.Slug, event.Status)
			}
		}
	}
}

func StartEventStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("failed to create event scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateEventStatus),
	)
	if err != nil {
		log.Printf("failed to register event status job: %v", err)
		return
	}

	eventScheduler = s
	s.Start()
}

func StopEventStatusScheduler() {
	if eventScheduler != nil {
		_ = eventScheduler.Shutdown()
	}
}
