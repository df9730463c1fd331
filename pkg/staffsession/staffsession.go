// Package staffsession implements opaque, redis-backed sessions for staff
// accounts. Staff authenticate with a cookie rather than bearer tokens, so a
// stolen token can be revoked server-side immediately.
package staffsession

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrNotFound = errors.New("staff session not found")
	ErrInvalid  = errors.New("invalid staff session token")
)

const keyPrefix = "staff_session:"

// Session is the server-side state behind a staff cookie.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store creates, resolves and revokes staff sessions in redis.
type Store struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewStore(rdb *goredis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Create mints a new opaque token and stores the session under it.
func (s *Store) Create(ctx context.Context, userID uuid.UUID, username string) (string, *Session, error) {
	token, err := randomToken()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	sess := &Session{
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", nil, err
	}

	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", nil, fmt.Errorf("store staff session: %w", err)
	}

	return token, sess, nil
}

// Get resolves a cookie token to its session. Expired or unknown tokens
// return ErrNotFound.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalid
	}

	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load staff session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, ErrInvalid
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = s.rdb.Del(ctx, keyPrefix+token).Err()
		return nil, ErrNotFound
	}

	return &sess, nil
}

// Revoke deletes a session, logging the staff member out everywhere the
// cookie was used.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalid
	}
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// TTL reports the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
