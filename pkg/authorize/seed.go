package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the clinic.
//
// Three policy subjects exist: role:staff, role:patient and the anonymous
// pseudo-subject. Both roles inherit anonymous, so public grants never have
// to be repeated per role.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// Staff: god mode over every clinic resource.
	staffPolicies := []PermissionPolicy{
		{GroupSubject(RoleStaff), WildcardResource, WildcardAction, EffectAllow},
	}

	// Anonymous: public marketing surface is readable without credentials.
	anonPolicies := []PermissionPolicy{
		{SubjectAnonymous, ResourceBlogPost, ActionRead, EffectAllow},
		{SubjectAnonymous, ResourceBlogPost, ActionList, EffectAllow},
		{SubjectAnonymous, ResourceFaq, ActionRead, EffectAllow},
		{SubjectAnonymous, ResourceFaq, ActionList, EffectAllow},
		{SubjectAnonymous, ResourceReview, ActionRead, EffectAllow},
		{SubjectAnonymous, ResourceReview, ActionList, EffectAllow},
	}

	// Patients: own profile, own appointments, leaving reviews. Ownership
	// scoping (a patient only ever sees rows linked to their own profile)
	// is applied by the services on top of these grants.
	patientPolicies := []PermissionPolicy{
		{GroupSubject(RolePatient), ResourceProfile, ActionRead, EffectAllow},
		{GroupSubject(RolePatient), ResourcePatient, ActionRead, EffectAllow},
		{GroupSubject(RolePatient), ResourceAppointment, ActionCreate, EffectAllow},
		{GroupSubject(RolePatient), ResourceAppointment, ActionRead, EffectAllow},
		{GroupSubject(RolePatient), ResourceAppointment, ActionList, EffectAllow},
		{GroupSubject(RolePatient), ResourceReview, ActionCreate, EffectAllow},
	}

	allPolicies := append(append(staffPolicies, anonPolicies...), patientPolicies...)

	for _, p := range allPolicies {
		for _, action := range expandManage(p.Action) {
			added, err := auth.AddPermission(ctx, p.Subject, p.Object, action, p.Effect)
			if err != nil {
				logger.Error("failed to add policy", "policy", p, "error", err)
				return err
			}
			if added {
				logger.Debug("added policy", "subject", p.Subject, "resource", p.Object, "action", action)
			}
		}
	}

	groupings := []GroupingPolicy{
		{GroupSubject(RoleStaff), Role(SubjectAnonymous)},
		{GroupSubject(RolePatient), Role(SubjectAnonymous)},
	}
	for _, g := range groupings {
		if _, err := auth.Raw().AddGroupingPolicy(string(g.Subject), string(g.Role)); err != nil {
			logger.Error("failed to add grouping", "grouping", g, "error", err)
			return err
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// SeedOpenAppointmentReads grants the anonymous subject read/list on
// appointments, replicating the legacy fully-open appointment endpoints.
// Only call this when authorization.open_appointment_reads is enabled.
func SeedOpenAppointmentReads(ctx context.Context, auth IAuthorization) error {
	for _, action := range []Action{ActionRead, ActionList} {
		if _, err := auth.AddPermission(ctx, SubjectAnonymous, ResourceAppointment, action, EffectAllow); err != nil {
			return err
		}
	}
	return nil
}

// expandManage turns ActionManage into its concrete CRUD+list set.
// Every other action passes through unchanged.
func expandManage(a Action) []Action {
	if a == ActionManage {
		return ManageActions
	}
	return []Action{a}
}

// AssignPatientRole grants the patient role to a user.
// Call this when creating a new non-staff user.
func AssignPatientRole(ctx context.Context, auth IAuthorization, userID string) error {
	_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), RolePatient)
	return err
}

// AssignStaffRole grants the staff role to a user.
// Staff accounts are provisioned by operators, never via self-registration.
func AssignStaffRole(ctx context.Context, auth IAuthorization, userID string) error {
	_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), RoleStaff)
	return err
}

// RemoveStaffRole revokes the staff role from a user.
func RemoveStaffRole(ctx context.Context, auth IAuthorization, userID string) error {
	_, err := auth.RemoveRoleForUser(ctx, GroupSubject(userID), RoleStaff)
	return err
}

// GetRoles returns all roles a user currently holds.
func GetRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	return auth.GetRolesForUser(ctx, GroupSubject(userID))
}
