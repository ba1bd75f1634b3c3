package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

const (
	DefaultTTL        = 24 * 7 * time.Hour
	sessionKeyPrefix  = "workoutlog-session||"
	tokensSetKey      = "workoutlog-sessions"
	minPasswordLength = 6

	fieldUserID    = "user_id"
	fieldEmail     = "email"
	fieldCreatedAt = "created_at"
)

var (
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type usersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	redisClient *redis.Client
	usersRepo   usersRepo
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	usersRepo usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		usersRepo:      usersRepo,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (as *Service) Signup(ctx context.Context, credentials Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.signup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email := strings.TrimSpace(credentials.Email)
	if !strings.Contains(email, "@") || len(credentials.Password) < minPasswordLength {
		return nil, ErrInvalidCredentials
	}

	passwordHash, err := pkg.HashPassword(credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := as.usersRepo.Create(ctx, email, passwordHash)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))
	return user, nil
}

// Login checks the credentials and opens a new session, returning its token.
func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (_ string, _ *Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := as.usersRepo.GetByEmail(ctx, strings.TrimSpace(credentials.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrWrongCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return "", nil, ErrWrongCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", nil, err
	}

	cmdHSet := as.redisClient.HSet(
		ctx, sessionKey(token),
		fieldUserID, user.ID,
		fieldEmail, user.Email,
		fieldCreatedAt, createdAt.Unix(),
	)
	if err := cmdHSet.Err(); err != nil {
		return "", nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", nil, err
	}

	identity := user.Identity()
	span.SetAttributes(attribute.Int("user.id", identity.UserID))
	return token, &identity, nil
}

// Logout removes the session. Returns false if there was no such session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	cmdDel := as.redisClient.Del(ctx, sessionKey(token))
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAtCmd := as.redisClient.HGet(ctx, sessionKey(token), fieldCreatedAt)
		if err := createdAtCmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// session hash already gone, only the set member is left
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtCmd.Val(), 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Debugf("=> auth service, scan and clean removed %d sessions", len(toRemove))
}
