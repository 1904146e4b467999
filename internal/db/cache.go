package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/pharmakart/loyalty/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const tiersKey = "loyalty:tiers"

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("LOYALTY_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env LOYALTY_CACHE_URL is not set")
	}
	user := os.Getenv("LOYALTY_CACHE_USER")
	pwd := os.Getenv("LOYALTY_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func (c *CacheService) GetTiers(ctx context.Context) (tiers []model.Tier, err error) {
	val, err := c.client.Get(ctx, tiersKey).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("tiers not cached")
	} else if err != nil {
		return nil, err
	}

	err = json.Unmarshal([]byte(val), &tiers)
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

func (c *CacheService) SetTiers(ctx context.Context, tiers []model.Tier) (err error) {
	val, err := json.Marshal(tiers)
	if err != nil {
		return err
	}
	err = c.client.Set(ctx, tiersKey, val, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidateTiers(ctx context.Context) error {
	err := c.client.Del(ctx, tiersKey).Err()
	if err != nil {
		return err
	}
	return nil
}
