package password

import (
	"testing"

	"github.com/dentalperfections/dental_backend/config"
)

func TestFromCentralConfigDefaults(t *testing.T) {
	// An empty (omitted) password section must resolve to the package
	// defaults rather than zeroed Argon2 parameters.
	got := FromCentralConfig(config.PasswordConfig{})
	if got != DefaultConfig() {
		t.Errorf("FromCentralConfig(zero) = %+v, want defaults %+v", got, DefaultConfig())
	}
}

func TestFromCentralConfigOverrides(t *testing.T) {
	got := FromCentralConfig(config.PasswordConfig{
		MemoryKiB:     48 * 1024,
		Iterations:    4,
		LowMemoryMode: true,
	})

	if got.MemoryKiB != 48*1024 {
		t.Errorf("MemoryKiB = %d, want %d", got.MemoryKiB, 48*1024)
	}
	if got.Iterations != 4 {
		t.Errorf("Iterations = %d, want 4", got.Iterations)
	}
	if got.Parallelism != DefaultConfig().Parallelism {
		t.Errorf("Parallelism = %d, want default %d", got.Parallelism, DefaultConfig().Parallelism)
	}

	// The low-memory clamp applies when converting to hashing params.
	p := got.ToParams()
	if p.Memory != 32*1024 {
		t.Errorf("ToParams().Memory = %d, want clamped %d", p.Memory, 32*1024)
	}
}
