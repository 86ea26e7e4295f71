package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-identity/internal/logger"
)

// IssueCodeRepository keeps one-time codes that a browser exchanges for tokens
// after an OAuth callback.
type IssueCodeRepository struct {
	client redis.Cmdable
	exp    time.Duration
}

// NewIssueCodeRepository creates a repository whose codes live for expiration.
func NewIssueCodeRepository(client redis.Cmdable, expiration time.Duration) *IssueCodeRepository {
	return &IssueCodeRepository{client: client, exp: expiration}
}

func issueCodeKey(code string) string {
	return fmt.Sprintf("issue_code:%s", code)
}

// Save stores code -> user uuid. An existing code is never overwritten.
func (r *IssueCodeRepository) Save(ctx context.Context, code string, userUUID uuid.UUID) error {
	key := issueCodeKey(code)
	ok, err := r.client.SetNX(ctx, key, userUUID.String(), r.exp).Result()

	logger.Log.Infow("redis setnx",
		"key", key,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return err
	}
	if !ok {
		return ErrUniqueViolation
	}
	return nil
}

// Take atomically reads and deletes the code, so each code is redeemable once.
func (r *IssueCodeRepository) Take(ctx context.Context, code string) (uuid.UUID, error) {
	key := issueCodeKey(code)
	val, err := r.client.GetDel(ctx, key).Result()

	logger.Log.Infow("redis getdel",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(val)
}
