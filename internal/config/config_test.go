package config

import "testing"

func TestAdminSet(t *testing.T) {
	t.Setenv("ADMIN_MOBILE_NUMBERS", "9000000001, 9000000002 ,")
	cfg := Load()
	set := cfg.AdminSet()
	if len(set) != 2 {
		t.Fatalf("want 2 admin numbers, got %d: %v", len(set), set)
	}
	if !set["9000000001"] || !set["9000000002"] {
		t.Fatalf("allowlist parse broken: %v", set)
	}
	if set["9000000003"] {
		t.Fatal("unexpected number in allowlist")
	}
}

func TestAccessTTLDefault(t *testing.T) {
	t.Setenv("ACCESS_TTL_HOURS", "")
	cfg := Load()
	if cfg.AccessTTLHours != 72 {
		t.Fatalf("default access TTL must be 3 days, got %d hours", cfg.AccessTTLHours)
	}
}
