package version

import "testing"

func TestString(t *testing.T) {
	if got := String(); got != "dev" {
		t.Errorf("String() = %q, want dev", got)
	}

	Version, GitCommit, BuildDate = "1.0.0", "abc123", "2026-01-02"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	if got := String(); got != "1.0.0 (abc123, built 2026-01-02)" {
		t.Errorf("String() = %q", got)
	}
	if got := Application(); got != "prints 1.0.0" {
		t.Errorf("Application() = %q", got)
	}
}
