package slack

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClampHistoryLimit(t *testing.T) {
	policy := DefaultPolicy()
	cases := []struct {
		in, want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{42, 42},
		{100, 100},
		{500, 100},
	}
	for _, tc := range cases {
		if got := policy.clampHistoryLimit(tc.in); got != tc.want {
			t.Fatalf("clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLoadPolicyOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := "history_max: 50\nsearch_default_count: 5\ntimeout: 10s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	policy, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("load policy: %v", err)
	}
	if policy.HistoryMax != 50 {
		t.Fatalf("history_max = %d, want 50", policy.HistoryMax)
	}
	if policy.SearchDefaultCount != 5 {
		t.Fatalf("search_default_count = %d, want 5", policy.SearchDefaultCount)
	}
	if policy.Timeout != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", policy.Timeout)
	}
	// Untouched fields keep their defaults.
	if policy.BaseURL != DefaultPolicy().BaseURL {
		t.Fatalf("base_url should keep default, got %q", policy.BaseURL)
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing policy file")
	}
}
