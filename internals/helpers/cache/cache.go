// file: internals/helpers/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"pegawaiku_backend/internals/configs"
)

// Client nil saat REDIS_HOST tidak diset → semua operasi jadi no-op.
var Client *redis.Client

func InitRedis() {
	host := configs.GetEnv("REDIS_HOST")
	if host == "" {
		log.Println("[INFO] REDIS_HOST kosong, cache dinonaktifkan")
		return
	}

	dbIdx := 0
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, configs.GetEnv("REDIS_PORT", "6379")),
		Password:     configs.GetEnv("REDIS_PASSWORD", ""),
		DB:           dbIdx,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis tidak tersedia, cache dinonaktifkan: %v", err)
		return
	}
	Client = rdb
	log.Println("✅ Redis connected.")
}

// GetJSON mengambil nilai cache ke dest. false kalau miss / cache mati.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON menyimpan nilai ke cache dengan TTL. Gagal → diabaikan (best effort).
func SetJSON(ctx context.Context, key string, val interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("[WARN] cache set %s: %v", key, err)
	}
}
