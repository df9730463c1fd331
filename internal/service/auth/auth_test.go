package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/casbin/casbin/v2"
	_ "github.com/mattn/go-sqlite3"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dentalperfections/dental_backend/config"
	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/repo/enttest"
	"github.com/dentalperfections/dental_backend/internal/service/user"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
	pasetotoken "github.com/dentalperfections/dental_backend/pkg/paseto"
	"github.com/dentalperfections/dental_backend/pkg/staffsession"
	"github.com/dentalperfections/dental_backend/pkg/util/password"
)

// fakeAuthz satisfies role grants during registration without an enforcer.
type fakeAuthz struct{}

func (fakeAuthz) Enforce(context.Context, authorize.GroupSubject, authorize.Resource, authorize.Action) (bool, error) {
	return true, nil
}
func (fakeAuthz) MustEnforce(context.Context, authorize.GroupSubject, authorize.Resource, authorize.Action) error {
	return nil
}
func (fakeAuthz) AddRoleForUser(context.Context, authorize.GroupSubject, authorize.Role) (bool, error) {
	return true, nil
}
func (fakeAuthz) RemoveRoleForUser(context.Context, authorize.GroupSubject, authorize.Role) (bool, error) {
	return true, nil
}
func (fakeAuthz) GetRolesForUser(context.Context, authorize.GroupSubject) ([]authorize.Role, error) {
	return nil, nil
}
func (fakeAuthz) AddPermission(context.Context, authorize.GroupSubject, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}
func (fakeAuthz) RemovePermission(context.Context, authorize.GroupSubject, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}
func (fakeAuthz) Raw() *casbin.DistributedEnforcer { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Authentication.Paseto = config.PasetoConfig{
		Mode:             "local",
		LocalKeyHex:      "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f",
		Issuer:           "dental-test",
		Audience:         "dental-test",
		AccessTTLMinutes: 15,
		RefreshTTLDays:   7,
	}
	return cfg
}

func newTestService(t *testing.T) (Service, *repo.Client, *miniredis.Miniredis) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := testConfig()
	mgr, err := pasetotoken.NewPasetoManager(cfg)
	if err != nil {
		t.Fatalf("paseto manager: %v", err)
	}

	sessions := staffsession.NewStore(rdb, time.Hour)
	users := user.New(client, fakeAuthz{}, nil)

	return New(client, rdb, mgr, sessions, users, nil, cfg, nil), client, mr
}

// seedStaff provisions a staff account directly, the way the CLI does.
func seedStaff(t *testing.T, client *repo.Client, username, pass string) *repo.User {
	t.Helper()
	hash, err := password.Hash(pass)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return client.User.Create().
		SetUsername(username).
		SetPasswordHash(hash).
		SetIsStaff(true).
		SaveX(context.Background())
}

func TestRegisterLinksProfile(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t)

	u, err := svc.Register(ctx, RegisterRequest{
		Username: "jane_doe",
		Email:    "jane@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.IsStaff {
		t.Error("self-registration must never create staff accounts")
	}

	n := client.Patient.Query().CountX(ctx)
	if n != 1 {
		t.Errorf("patient count = %d, want 1 (linked profile)", n)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"short username", RegisterRequest{Username: "ab", Password: "longenough"}, ErrInvalidUsername},
		{"bad chars", RegisterRequest{Username: "has spaces", Password: "longenough"}, ErrInvalidUsername},
		{"bad email", RegisterRequest{Username: "valid_name", Email: "nope", Password: "longenough"}, ErrInvalidEmail},
		{"short password", RegisterRequest{Username: "valid_name", Password: "short"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	req := RegisterRequest{Username: "taken", Password: "longenough"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Errorf("err = %v, want ErrUsernameAlreadyExists", err)
	}
}

func TestLoginAndResolveAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	if _, err := svc.Register(ctx, RegisterRequest{Username: "login_user", Password: "longenough"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tokens, err := svc.Login(ctx, LoginRequest{Username: "login_user", Password: "longenough"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	u, claims, err := svc.ResolveAccessToken(ctx, tokens.AccessToken)
	if err != nil {
		t.Fatalf("ResolveAccessToken: %v", err)
	}
	if u.Username != "login_user" {
		t.Errorf("resolved %q, want login_user", u.Username)
	}
	if claims.SessionID == nil {
		t.Fatal("access token must carry a session id")
	}

	// Refresh tokens are not valid as access tokens.
	if _, _, err := svc.ResolveAccessToken(ctx, tokens.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh-as-access: err = %v, want ErrInvalidToken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	if _, err := svc.Register(ctx, RegisterRequest{Username: "victim", Password: "longenough"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginRequest{Username: "victim", Password: "wrong-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	if _, err := svc.Register(ctx, RegisterRequest{Username: "refresher", Password: "longenough"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	tokens, err := svc.Login(ctx, LoginRequest{Username: "refresher", Password: "longenough"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshTokens(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshTokens: %v", err)
	}
	if refreshed.RefreshToken != tokens.RefreshToken {
		t.Error("refresh token must stay the same until logout")
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a fresh access token")
	}

	// Access tokens can't be used to refresh.
	if _, err := svc.RefreshTokens(ctx, tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access-as-refresh: err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	if _, err := svc.Register(ctx, RegisterRequest{Username: "leaver", Password: "longenough"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	tokens, err := svc.Login(ctx, LoginRequest{Username: "leaver", Password: "longenough"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, claims, err := svc.ResolveAccessToken(ctx, tokens.AccessToken)
	if err != nil {
		t.Fatalf("ResolveAccessToken: %v", err)
	}

	if err := svc.Logout(ctx, *claims.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, _, err := svc.ResolveAccessToken(ctx, tokens.AccessToken); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("after logout: err = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.RefreshTokens(ctx, tokens.RefreshToken); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("refresh after logout: err = %v, want ErrSessionNotFound", err)
	}
}

func TestStaffLogin(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t)

	// Patients can't open staff sessions.
	if _, err := svc.Register(ctx, RegisterRequest{Username: "mere_patient", Password: "longenough"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.StaffLogin(ctx, LoginRequest{Username: "mere_patient", Password: "longenough"}); !errors.Is(err, ErrNotStaff) {
		t.Errorf("patient staff-login: err = %v, want ErrNotStaff", err)
	}

	// Provision a staff account directly, the way the CLI does.
	seedStaff(t, client, "dr_staff", "longenough")

	token, sess, err := svc.StaffLogin(ctx, LoginRequest{Username: "dr_staff", Password: "longenough"})
	if err != nil {
		t.Fatalf("StaffLogin: %v", err)
	}
	if token == "" || sess.Username != "dr_staff" {
		t.Fatalf("unexpected session: token=%q username=%q", token, sess.Username)
	}

	u, err := svc.ResolveStaffSession(ctx, token)
	if err != nil {
		t.Fatalf("ResolveStaffSession: %v", err)
	}
	if !u.IsStaff {
		t.Error("resolved user must be staff")
	}

	if err := svc.StaffLogout(ctx, token); err != nil {
		t.Fatalf("StaffLogout: %v", err)
	}
	if _, err := svc.ResolveStaffSession(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("after logout: err = %v, want ErrSessionNotFound", err)
	}
}

func TestStaffSessionRevokedOnDemotion(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t)

	staffUser := seedStaff(t, client, "demoted", "longenough")

	token, _, err := svc.StaffLogin(ctx, LoginRequest{Username: "demoted", Password: "longenough"})
	if err != nil {
		t.Fatalf("StaffLogin: %v", err)
	}

	// Revoke staff status while the session is live.
	client.User.UpdateOneID(staffUser.ID).SetIsStaff(false).SaveX(ctx)

	if _, err := svc.ResolveStaffSession(ctx, token); !errors.Is(err, ErrNotStaff) {
		t.Errorf("err = %v, want ErrNotStaff", err)
	}
	// The session itself is revoked, so a second attempt finds nothing.
	if _, err := svc.ResolveStaffSession(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second resolve: err = %v, want ErrSessionNotFound", err)
	}
}
