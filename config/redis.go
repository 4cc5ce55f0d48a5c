package config

import (
	"context"

	"stay/services/logger"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var redisLog = logger.NewDefaultLogger(logger.InfoLevel)

// ConnectRedis khởi tạo client Redis từ biến môi trường đã nạp qua LoadEnv
func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDR"),
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	// Kiểm tra kết nối
	res, err := rdb.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	redisLog.Info("Kết nối Redis thành công: %s", res)
	return rdb, nil
}
