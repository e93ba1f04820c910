package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client is not initialized")

// SetValue 设置键值对
func SetValue(ctx context.Context, key string, value interface{}) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Set(ctx, key, value, 0).Err()
}

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", ErrNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetInt64 获取整型值，键不存在时返回 redis.Nil
func GetInt64(ctx context.Context, key string) (int64, error) {
	if Rdb == nil {
		return 0, ErrNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// IncrBy 计数器自增
func IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if Rdb == nil {
		return 0, ErrNotInitialized
	}
	return Rdb.IncrBy(ctx, key, delta).Result()
}

// DeleteKey 删除键
func DeleteKey(ctx context.Context, key string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Del(ctx, key).Err()
}

// Rename 重命名键，源键不存在时返回错误
func Rename(ctx context.Context, key string, newKey string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Rename(ctx, key, newKey).Err()
}

// Expire 设置键的过期时间
func Expire(ctx context.Context, key string, expiration time.Duration) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Expire(ctx, key, expiration).Err()
}

// SAdd 向集合添加成员
func SAdd(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.SAdd(ctx, key, members...).Err()
}

// GetSet 获取集合全部成员
func GetSet(ctx context.Context, key string) ([]string, error) {
	if Rdb == nil {
		return nil, ErrNotInitialized
	}
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// SetNX 仅当键不存在时写入，用于幂等标记
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if Rdb == nil {
		return false, ErrNotInitialized
	}
	return Rdb.SetNX(ctx, key, value, expiration).Result()
}
