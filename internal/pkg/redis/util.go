package redis

import (
	"context"
	"errors"
	"time"

	"SocialPulse/internal/pkg/util"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// SetWithMidnightExpiration 序列化后写入，次日零点过期（日级缓存）
func SetWithMidnightExpiration(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	nextMidnight := util.GetMidnight(time.Now()).AddDate(0, 0, 1)
	return Rdb.Set(ctx, key, b, time.Until(nextMidnight)).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
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
	return Rdb.Get(ctx, key).Int64()
}

// IncrByExisting 仅对已存在的计数键做增减。
// 未种子化的键跳过，留给读路径回源落库后种子化，避免缺键时减出负数
func IncrByExisting(ctx context.Context, key string, delta int64) error {
	n, err := Rdb.Exists(ctx, key).Result()
	if err != nil || n == 0 {
		return err
	}
	return Rdb.IncrBy(ctx, key, delta).Err()
}

// SAddValue 向集合添加成员
func SAddValue(ctx context.Context, key string, member string) error {
	return Rdb.SAdd(ctx, key, member).Err()
}

// GetSet 获取集合
func GetSet(ctx context.Context, key string) ([]string, error) {
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

func Rename(ctx context.Context, oldKey string, newKey string) error {
	return Rdb.Rename(ctx, oldKey, newKey).Err()
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}
