package helper

import (
	"campus_cms/database"
	"campus_cms/model"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const (
	directoryCacheTTL = 60 * time.Second
	moderationChannel = "moderation:feed"
)

func directoryCacheKey(department string) string {
	if department == "" {
		return "directory:all"
	}
	return "directory:dept:" + department
}

// CachedVisibleProfiles serves the public directory from redis when possible.
// The cache only ever stores the projection's own output, so it can never
// leak a non-approved profile. Any cache failure falls through to the DB.
func CachedVisibleProfiles(department string) (model.Profiles, error) {
	ctx := context.Background()
	key := directoryCacheKey(department)

	if database.Redis != nil {
		if raw, err := database.Redis.Get(ctx, key).Result(); err == nil {
			var cached model.Profiles
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	profiles, err := VisibleProfiles(department)
	if err != nil {
		return nil, err
	}

	if database.Redis != nil {
		if raw, err := json.Marshal(profiles); err == nil {
			if err := database.Redis.Set(ctx, key, raw, directoryCacheTTL).Err(); err != nil {
				log.Printf("directory cache set failed: %v", err)
			}
		}
	}
	return profiles, nil
}

// InvalidateDirectoryCache drops every cached directory listing. Called after
// each submit and review; best-effort.
func InvalidateDirectoryCache() {
	if database.Redis == nil {
		return
	}
	ctx := context.Background()
	iter := database.Redis.Scan(ctx, 0, "directory:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := database.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("directory cache invalidation failed: %v", err)
			return
		}
	}
}

// PublishModeration fans a submission event out to connected reviewers via
// the redis channel backing the review websocket. Fire-and-forget.
func PublishModeration(accountId uint, action string) {
	if database.Redis == nil {
		return
	}
	payload := fmt.Sprintf(`{"accountId":%d,"action":%q}`, accountId, action)
	if err := database.Redis.Publish(context.Background(), moderationChannel, payload).Err(); err != nil {
		log.Printf("moderation publish failed: %v", err)
	}
}

// ModerationChannel exposes the channel name to the websocket handler.
func ModerationChannel() string { return moderationChannel }
