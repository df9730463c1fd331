package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testKeyHex = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"

func newLocalManager(t *testing.T, audience string) *Manager {
	t.Helper()

	keys, err := LoadKeys(KeyStrings{Mode: ModeLocal, SymmetricHex: testKeyHex})
	if err != nil {
		t.Fatalf("LoadKeys() error = %v", err)
	}

	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "dental-backend",
		Audience:   audience,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, keys)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerify(t *testing.T) {
	m := newLocalManager(t, "dental-backend")

	userID := uuid.New()
	sid := uuid.New()

	tok, err := m.IssueAccess(userID, &sid)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sid {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sid)
	}
}

func TestVerifyTokenIssuedAfterConstruction(t *testing.T) {
	// Token validity must be judged at verification time. A manager whose
	// validation clock is pinned at construction rejects every token issued
	// after it was built.
	m := newLocalManager(t, "dental-backend")

	time.Sleep(1500 * time.Millisecond)

	tok, err := m.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}
	if _, err := m.Verify(tok); err != nil {
		t.Fatalf("Verify() of a token issued after construction: %v", err)
	}
}

func TestVerifyWrongAudience(t *testing.T) {
	issuer := newLocalManager(t, "dental-backend")
	other := newLocalManager(t, "some-other-api")

	tok, err := issuer.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := other.Verify(tok); err == nil {
		t.Error("Verify() accepted a token minted for a different audience")
	}
}
