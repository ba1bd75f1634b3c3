package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Identity resolves a session token. A nil identity with a nil error means the
// token is unknown or its session expired.
func (lc *LoginChecker) Identity(ctx context.Context, token string) (*Identity, error) {
	cmd := lc.redisClient.HGetAll(ctx, sessionKey(token))
	if err := cmd.Err(); err != nil {
		return nil, err
	}

	session := cmd.Val()
	if len(session) == 0 {
		return nil, nil
	}

	createdAtUnix, err := strconv.ParseInt(session[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}
	if time.Since(time.Unix(createdAtUnix, 0)) > lc.ttl {
		return nil, nil
	}

	userID, err := strconv.Atoi(session[fieldUserID])
	if err != nil {
		return nil, fmt.Errorf("parse session user id: %w", err)
	}

	return &Identity{
		UserID: userID,
		Email:  session[fieldEmail],
	}, nil
}
