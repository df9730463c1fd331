package staffsession

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewStore(rdb, ttl), mr
}

func TestCreateAndGet(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	userID := uuid.New()
	token, sess, err := store.Create(ctx, userID, "drsmith")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if token == "" {
		t.Fatal("Create() returned empty token")
	}
	if sess.UserID != userID {
		t.Errorf("session UserID = %v, want %v", sess.UserID, userID)
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UserID != userID || got.Username != "drsmith" {
		t.Errorf("Get() = %+v, want user %v", got, userID)
	}
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestGetEmptyToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(context.Background(), "")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Get() error = %v, want ErrInvalid", err)
	}
}

func TestExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, _, err := store.Create(ctx, uuid.New(), "drsmith")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Redis-side TTL eviction
	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestRevoke(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, _, err := store.Create(ctx, uuid.New(), "drsmith")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	_, err = store.Get(ctx, token)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after revoke error = %v, want ErrNotFound", err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, _, err := store.Create(ctx, uuid.New(), "drsmith")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, dup := seen[token]; dup {
			t.Fatal("Create() produced a duplicate token")
		}
		seen[token] = struct{}{}
	}
}
