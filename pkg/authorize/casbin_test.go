package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Write model config
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, eft

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	// Create adapter with file
	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func seededAuth(t *testing.T) IAuthorization {
	t.Helper()
	e := createTestEnforcer(t)
	auth, err := NewAuthorization(e)
	if err != nil {
		t.Fatalf("failed to create authorization: %v", err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatalf("failed to seed policies: %v", err)
	}
	return auth
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforceSeededPolicies(t *testing.T) {
	auth := seededAuth(t)
	ctx := context.Background()

	staffID := "2fb0a9f3-6f7e-4b8e-9c2f-111111111111"
	patientID := "2fb0a9f3-6f7e-4b8e-9c2f-222222222222"

	if err := AssignStaffRole(ctx, auth, staffID); err != nil {
		t.Fatalf("failed to assign staff role: %v", err)
	}
	if err := AssignPatientRole(ctx, auth, patientID); err != nil {
		t.Fatalf("failed to assign patient role: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "anonymous may read blog posts",
			subject:  SubjectAnonymous,
			resource: ResourceBlogPost,
			action:   ActionRead,
			want:     true,
		},
		{
			name:     "anonymous may list faq",
			subject:  SubjectAnonymous,
			resource: ResourceFaq,
			action:   ActionList,
			want:     true,
		},
		{
			name:     "anonymous may list reviews",
			subject:  SubjectAnonymous,
			resource: ResourceReview,
			action:   ActionList,
			want:     true,
		},
		{
			name:     "anonymous may not create reviews",
			subject:  SubjectAnonymous,
			resource: ResourceReview,
			action:   ActionCreate,
			want:     false,
		},
		{
			name:     "anonymous may not list patients",
			subject:  SubjectAnonymous,
			resource: ResourcePatient,
			action:   ActionList,
			want:     false,
		},
		{
			name:     "patient may create appointments",
			subject:  GroupSubject(patientID),
			resource: ResourceAppointment,
			action:   ActionCreate,
			want:     true,
		},
		{
			name:     "patient may create reviews",
			subject:  GroupSubject(patientID),
			resource: ResourceReview,
			action:   ActionCreate,
			want:     true,
		},
		{
			name:     "patient inherits public blog read",
			subject:  GroupSubject(patientID),
			resource: ResourceBlogPost,
			action:   ActionRead,
			want:     true,
		},
		{
			name:     "patient may not list patients",
			subject:  GroupSubject(patientID),
			resource: ResourcePatient,
			action:   ActionList,
			want:     false,
		},
		{
			name:     "patient may not update dental history",
			subject:  GroupSubject(patientID),
			resource: ResourceDentalHistory,
			action:   ActionUpdate,
			want:     false,
		},
		{
			name:     "staff may list patients",
			subject:  GroupSubject(staffID),
			resource: ResourcePatient,
			action:   ActionList,
			want:     true,
		},
		{
			name:     "staff may delete prescriptions",
			subject:  GroupSubject(staffID),
			resource: ResourcePrescription,
			action:   ActionDelete,
			want:     true,
		},
		{
			name:     "staff may update appointments",
			subject:  GroupSubject(staffID),
			resource: ResourceAppointment,
			action:   ActionUpdate,
			want:     true,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			resource: ResourceBlogPost,
			action:   ActionRead,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(staffID),
			resource: Resource("unknown"),
			action:   ActionRead,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(staffID),
			resource: ResourceBlogPost,
			action:   Action("unknown"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := seededAuth(t)
	ctx := context.Background()

	patientID := "2fb0a9f3-6f7e-4b8e-9c2f-333333333333"
	if err := AssignPatientRole(ctx, auth, patientID); err != nil {
		t.Fatalf("failed to assign patient role: %v", err)
	}

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(patientID), ResourceAppointment, ActionCreate)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(patientID), ResourceDentalHistory, ActionDelete)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestOpenAppointmentReads(t *testing.T) {
	auth := seededAuth(t)
	ctx := context.Background()

	// Closed by default
	allowed, err := auth.Enforce(ctx, SubjectAnonymous, ResourceAppointment, ActionList)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if allowed {
		t.Error("Expected appointment list to be closed to anonymous by default")
	}

	if err := SeedOpenAppointmentReads(ctx, auth); err != nil {
		t.Fatalf("failed to seed open reads: %v", err)
	}

	allowed, err = auth.Enforce(ctx, SubjectAnonymous, ResourceAppointment, ActionList)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected appointment list to be open after seeding legacy grants")
	}

	// Writes stay closed either way
	allowed, _ = auth.Enforce(ctx, SubjectAnonymous, ResourceAppointment, ActionCreate)
	if allowed {
		t.Error("Expected appointment create to remain closed to anonymous")
	}
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "2fb0a9f3-6f7e-4b8e-9c2f-444444444444"

	t.Run("add and get roles", func(t *testing.T) {
		added, err := auth.AddRoleForUser(ctx, GroupSubject(userID), RolePatient)
		if err != nil {
			t.Errorf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		roles, err := auth.GetRolesForUser(ctx, GroupSubject(userID))
		if err != nil {
			t.Errorf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 {
			t.Errorf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RolePatient {
			t.Errorf("Expected role %q, got %q", RolePatient, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUser(ctx, GroupSubject(userID), RolePatient)
		if err != nil {
			t.Errorf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		roles, _ := auth.GetRolesForUser(ctx, GroupSubject(userID))
		if len(roles) != 0 {
			t.Errorf("Expected 0 roles after removal, got %d", len(roles))
		}
	})

	t.Run("error for invalid role", func(t *testing.T) {
		_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), Role("invalid-role"))
		if err == nil {
			t.Error("Expected error for invalid role")
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		added, err := auth.AddPermission(ctx, GroupSubject(RolePatient), ResourceReview, ActionCreate, EffectAllow)
		if err != nil {
			t.Errorf("Failed to add permission: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}

		removed, err := auth.RemovePermission(ctx, GroupSubject(RolePatient), ResourceReview, ActionCreate, EffectAllow)
		if err != nil {
			t.Errorf("Failed to remove permission: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("error for invalid effect", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, GroupSubject(RoleStaff), ResourceUser, ActionRead, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})

	t.Run("error for unexpanded manage", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, GroupSubject(RoleStaff), ResourceUser, ActionManage, EffectAllow)
		if err == nil {
			t.Error("Expected error for manage action")
		}
	})
}
