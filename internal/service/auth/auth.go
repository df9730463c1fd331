package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dentalperfections/dental_backend/config"
	"github.com/dentalperfections/dental_backend/internal/repo"
	entuser "github.com/dentalperfections/dental_backend/internal/repo/user"
	"github.com/dentalperfections/dental_backend/internal/service/user"
	"github.com/dentalperfections/dental_backend/pkg/email"
	pasetotoken "github.com/dentalperfections/dental_backend/pkg/paseto"
	"github.com/dentalperfections/dental_backend/pkg/staffsession"
	"github.com/dentalperfections/dental_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a token session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reUsername = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]{3,150}$`)
var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginRequest struct {
	Username string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Register creates a non-staff account and links its patient profile.
	Register(ctx context.Context, req RegisterRequest) (*repo.User, error)

	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// ResolveAccessToken verifies a bearer token and its backing session,
	// returning the authenticated user.
	ResolveAccessToken(ctx context.Context, token string) (*repo.User, *pasetotoken.Claims, error)

	// Staff cookie sessions
	StaffLogin(ctx context.Context, req LoginRequest) (string, *staffsession.Session, error)
	StaffLogout(ctx context.Context, cookieToken string) error
	ResolveStaffSession(ctx context.Context, cookieToken string) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db         *repo.Client
	rdb        *redis.Client
	paseto     *pasetotoken.Manager
	sessions   *staffsession.Store
	users      user.Service
	mail       *email.Client
	cfg        *config.Config
	hashParams *password.Params
	logger     *slog.Logger
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	sessions *staffsession.Store,
	users user.Service,
	mail *email.Client,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		db:         db,
		rdb:        rdb,
		paseto:     paseto,
		sessions:   sessions,
		users:      users,
		mail:       mail,
		cfg:        cfg,
		hashParams: password.FromCentralConfig(cfg.Password).ToParams(),
		logger:     logger,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if !reUsername.MatchString(req.Username) {
		return nil, ErrInvalidUsername
	}
	if req.Email != "" && !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.Username(req.Username)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameAlreadyExists
	}

	passHash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Self-registration always produces a non-staff account. Staff accounts
	// are provisioned through the CLI.
	q := s.db.User.Create().
		SetUsername(req.Username).
		SetPasswordHash(passHash).
		SetIsStaff(false)

	if req.Email != "" {
		q = q.SetEmail(req.Email)
	}
	if req.FirstName != "" {
		q = q.SetFirstName(req.FirstName)
	}
	if req.LastName != "" {
		q = q.SetLastName(req.LastName)
	}

	u, err := q.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// The user row is committed; link the patient profile on top of it.
	// A linker failure surfaces as an error but never unwinds the account.
	if _, err := s.users.EnsurePatientProfile(ctx, u); err != nil {
		s.logger.Error("patient profile linking failed after registration",
			"user_id", u.ID, "error", err)
		return nil, ErrProfileLinkFailed
	}

	s.sendWelcomeEmail(ctx, u)

	return u, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	u, err := s.verifyCredentials(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, u)
}

func (s *authService) verifyCredentials(ctx context.Context, req LoginRequest) (*repo.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Username(req.Username)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		s.logger.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Token resolution
// ---------------------------------------------------------------------------

func (s *authService) ResolveAccessToken(ctx context.Context, token string) (*repo.User, *pasetotoken.Claims, error) {
	claims, err := s.paseto.Verify(token)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeAccess {
		return nil, nil, ErrInvalidToken
	}

	// Only access tokens backed by a live session are accepted.
	if claims.SessionID != nil {
		key := redisKeySession(claims.SessionID.String())
		if err := s.rdb.Get(ctx, key).Err(); err != nil {
			return nil, nil, ErrSessionNotFound
		}
	}

	u, err := s.db.User.Get(ctx, claims.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	return u, claims, nil
}

// ---------------------------------------------------------------------------
// Staff sessions
// ---------------------------------------------------------------------------

func (s *authService) StaffLogin(ctx context.Context, req LoginRequest) (string, *staffsession.Session, error) {
	u, err := s.verifyCredentials(ctx, req)
	if err != nil {
		return "", nil, err
	}
	if !u.IsStaff {
		return "", nil, ErrNotStaff
	}

	token, sess, err := s.sessions.Create(ctx, u.ID, u.Username)
	if err != nil {
		return "", nil, fmt.Errorf("create staff session: %w", err)
	}
	return token, sess, nil
}

func (s *authService) StaffLogout(ctx context.Context, cookieToken string) error {
	if cookieToken == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, cookieToken)
}

func (s *authService) ResolveStaffSession(ctx context.Context, cookieToken string) (*repo.User, error) {
	sess, err := s.sessions.Get(ctx, cookieToken)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	u, err := s.db.User.Get(ctx, sess.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !u.IsStaff {
		// Role was revoked while the session was live.
		_ = s.sessions.Revoke(ctx, cookieToken)
		return nil, ErrNotStaff
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) sendWelcomeEmail(ctx context.Context, u *repo.User) {
	if s.mail == nil || u.Email == "" {
		return
	}
	msg := email.BuildWelcomeEmail(email.WelcomeEmailData{
		FirstName: u.FirstName,
		Email:     u.Email,
		Username:  u.Username,
	})
	if err := s.mail.Send(ctx, msg); err != nil {
		// Email failure shouldn't block registration
		s.logger.Warn("failed to send welcome email", "user_id", u.ID, "error", err)
	}
}
