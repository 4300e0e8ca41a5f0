package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"idento/internal/platform/config"
)

var RDB *redis.Client

// ConnectRedis opens the client backing the active-session registry.
func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
	}
}
