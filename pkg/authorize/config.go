package authorize

import "github.com/dentalperfections/dental_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// CasbinModelPath is the path to the Casbin model configuration file
	CasbinModelPath string

	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool

	// OpenAppointmentReads keeps appointment read/list open to the public,
	// matching the legacy deployment. Leave off for staff-or-owner reads.
	OpenAppointmentReads bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		CasbinModelPath:      "casbin_model.conf",
		EnableAudit:          true,
		OpenAppointmentReads: false,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package Config
func FromCentralConfig(c config.AuthorizationConfig) Config {
	return Config{
		CasbinModelPath:      c.CasbinModelPath,
		EnableAudit:          c.EnableAudit,
		OpenAppointmentReads: c.OpenAppointmentReads,
	}
}
