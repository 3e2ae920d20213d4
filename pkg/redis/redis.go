package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis caches the latest analysis snapshot per learner session so state
// reads never touch the analysis pipeline.
type IRedis interface {
	SetSessionState(ctx context.Context, sessionID string, payload string, expiration time.Duration) error
	GetSessionState(ctx context.Context, sessionID string) (string, error)
	DeleteSessionState(ctx context.Context, sessionID string) error
	TouchSessionActivity(ctx context.Context, sessionID string, expiration time.Duration) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func sessionStateKey(sessionID string) string {
	return "cognitive:state:" + sessionID
}

func sessionActivityKey(sessionID string) string {
	return "cognitive:activity:" + sessionID
}

func (r *redisClient) SetSessionState(ctx context.Context, sessionID string, payload string, expiration time.Duration) error {
	err := r.client.Set(ctx, sessionStateKey(sessionID), payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching state for session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSessionState(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, sessionStateKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("No cached state for session %s", sessionID))
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting state for session %s: %v", sessionID, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteSessionState(ctx context.Context, sessionID string) error {
	_, err := r.client.Del(ctx, sessionStateKey(sessionID), sessionActivityKey(sessionID)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting state for session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func (r *redisClient) TouchSessionActivity(ctx context.Context, sessionID string, expiration time.Duration) error {
	err := r.client.Set(ctx, sessionActivityKey(sessionID), time.Now().UTC().Format(time.RFC3339), expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error touching activity for session %s: %v", sessionID, err))
		return err
	}
	return nil
}
