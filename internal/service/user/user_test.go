package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/casbin/casbin/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/repo/enttest"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

// fakeAuthz records role grants without a real enforcer.
type fakeAuthz struct {
	roles map[authorize.GroupSubject][]authorize.Role
}

func newFakeAuthz() *fakeAuthz {
	return &fakeAuthz{roles: map[authorize.GroupSubject][]authorize.Role{}}
}

func (f *fakeAuthz) Enforce(ctx context.Context, subject authorize.GroupSubject, object authorize.Resource, action authorize.Action) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) MustEnforce(ctx context.Context, subject authorize.GroupSubject, object authorize.Resource, action authorize.Action) error {
	return nil
}

func (f *fakeAuthz) AddRoleForUser(ctx context.Context, subject authorize.GroupSubject, role authorize.Role) (bool, error) {
	f.roles[subject] = append(f.roles[subject], role)
	return true, nil
}

func (f *fakeAuthz) RemoveRoleForUser(ctx context.Context, subject authorize.GroupSubject, role authorize.Role) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) GetRolesForUser(ctx context.Context, subject authorize.GroupSubject) ([]authorize.Role, error) {
	return f.roles[subject], nil
}

func (f *fakeAuthz) AddPermission(ctx context.Context, subject authorize.GroupSubject, object authorize.Resource, action authorize.Action, effect authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) RemovePermission(ctx context.Context, subject authorize.GroupSubject, object authorize.Resource, action authorize.Action, effect authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) Raw() *casbin.DistributedEnforcer { return nil }

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestEnsurePatientProfile(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	authz := newFakeAuthz()
	svc := New(client, authz, nil)

	u := client.User.Create().
		SetUsername("jane_doe").
		SetPasswordHash("x").
		SetIsStaff(false).
		SaveX(ctx)

	p, err := svc.EnsurePatientProfile(ctx, u)
	if err != nil {
		t.Fatalf("EnsurePatientProfile: %v", err)
	}
	if p == nil {
		t.Fatal("expected a patient profile")
	}
	if p.UserID != u.ID {
		t.Errorf("profile linked to %s, want %s", p.UserID, u.ID)
	}

	// The patient role must have been granted.
	roles := authz.roles[authorize.GroupSubject(u.ID.String())]
	if len(roles) != 1 || roles[0] != authorize.RolePatient {
		t.Errorf("roles = %v, want [%s]", roles, authorize.RolePatient)
	}
}

func TestEnsurePatientProfileIdempotent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, newFakeAuthz(), nil)

	u := client.User.Create().
		SetUsername("repeat").
		SetPasswordHash("x").
		SetIsStaff(false).
		SaveX(ctx)

	first, err := svc.EnsurePatientProfile(ctx, u)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.EnsurePatientProfile(ctx, u)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("second call created a new profile: %s != %s", first.ID, second.ID)
	}

	n := client.Patient.Query().CountX(ctx)
	if n != 1 {
		t.Errorf("patient count = %d, want 1", n)
	}
}

func TestEnsurePatientProfileStaff(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client, newFakeAuthz(), nil)

	u := client.User.Create().
		SetUsername("dr_smith").
		SetPasswordHash("x").
		SetIsStaff(true).
		SaveX(ctx)

	p, err := svc.EnsurePatientProfile(ctx, u)
	if err != nil {
		t.Fatalf("EnsurePatientProfile: %v", err)
	}
	if p != nil {
		t.Error("staff accounts must not get a patient profile")
	}

	n := client.Patient.Query().CountX(ctx)
	if n != 0 {
		t.Errorf("patient count = %d, want 0", n)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		user  string
		want  string
	}{
		{"full name", "Jane", "Doe", "jane_doe", "Jane Doe"},
		{"first only", "Jane", "", "jane_doe", "Jane"},
		{"last only", "", "Doe", "jane_doe", "Doe"},
		{"username fallback", "", "", "jane_doe", "jane_doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &repo.User{Username: tt.user, FirstName: tt.first, LastName: tt.last}
			if got := DisplayName(u); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
