package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultDraftTTL = 24 * time.Hour
	draftKeyPrefix  = "workoutlog-draft||"

	maxDraftUpdateAttempts = 5
)

func draftKey(userID int) string {
	return draftKeyPrefix + strconv.Itoa(userID)
}

// DraftStore keeps one routine draft per user in redis, so a draft survives
// between requests. A missing or expired draft reads as a fresh one.
type DraftStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDraftStore(redisClient *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *DraftStore) Get(ctx context.Context, userID int) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.drafts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	raw, err := s.redisClient.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewDraft(), nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	return s.decode(userID, raw), nil
}

// decode turns a stored draft into a Draft; nothing stored or an undecodable
// value reads as a fresh draft.
func (s *DraftStore) decode(userID int, raw []byte) *Draft {
	if len(raw) == 0 {
		return NewDraft()
	}
	draft := &Draft{}
	if err := json.Unmarshal(raw, draft); err != nil {
		log.Warnf("dropping undecodable draft of user %d: %s", userID, err)
		return NewDraft()
	}
	if draft.Entries == nil {
		draft.Entries = []DraftEntry{}
	}
	return draft
}

// DraftMutation changes a draft in place and reports whether it changed.
type DraftMutation func(draft *Draft) (changed bool, err error)

// Update loads the user's draft, applies mutate and writes the result back.
// The key is watched, so a concurrent edit makes the write fail and the whole
// read-mutate-write is retried on the fresh draft.
func (s *DraftStore) Update(ctx context.Context, userID int, mutate DraftMutation) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.drafts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	key := draftKey(userID)
	for attempt := 1; attempt <= maxDraftUpdateAttempts; attempt++ {
		var draft *Draft
		err = s.redisClient.Watch(ctx, func(tx *redis.Tx) error {
			raw, err := tx.Get(ctx, key).Bytes()
			if err != nil && !errors.Is(err, redis.Nil) {
				return fmt.Errorf("get draft: %w", err)
			}
			draft = s.decode(userID, raw)

			changed, err := mutate(draft)
			if err != nil || !changed {
				return err
			}

			encoded, err := json.Marshal(draft)
			if err != nil {
				return fmt.Errorf("marshal draft: %w", err)
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, encoded, s.ttl)
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			span.SetAttributes(attribute.Int("attempts", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}
		return draft, nil
	}

	return nil, fmt.Errorf("%w: %d attempts", ErrDraftBusy, maxDraftUpdateAttempts)
}

func (s *DraftStore) Delete(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.drafts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.redisClient.Del(ctx, draftKey(userID)).Err()
}
