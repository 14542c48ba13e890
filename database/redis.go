package database

import (
	"campus_cms/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis initializes the shared redis client. Redis is best-effort
// infrastructure here (directory cache, moderation feed fan-out); callers
// must tolerate it being unreachable.
func ConnectRedis() {
	app := config.Current()
	addr := app.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: app.RedisPassword,
	})
}
