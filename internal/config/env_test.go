package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("STR_TEST", "")
	if got := envOrDefault("STR_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("STR_TEST", "value")
	if got := envOrDefault("STR_TEST", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DUR_TEST", "")
	if got := durationEnvOrDefault("DUR_TEST", time.Minute); got != time.Minute {
		t.Fatalf("expected default for unset, got %v", got)
	}
	t.Setenv("DUR_TEST", "30s")
	if got := durationEnvOrDefault("DUR_TEST", time.Minute); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}
	t.Setenv("DUR_TEST", "garbage")
	if got := durationEnvOrDefault("DUR_TEST", time.Minute); got != time.Minute {
		t.Fatalf("expected default for garbage, got %v", got)
	}
	t.Setenv("DUR_TEST", "-5s")
	if got := durationEnvOrDefault("DUR_TEST", time.Minute); got != time.Minute {
		t.Fatalf("expected default for negative, got %v", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default for unset, got %d", got)
	}
	t.Setenv("INT_TEST", "42")
	if got := intEnvOrDefault("INT_TEST", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("INT_TEST", "-1")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default for non-positive, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	fallback := []string{"fixture"}

	t.Setenv("LIST_TEST", "")
	got := listEnvOrDefault("LIST_TEST", fallback)
	if len(got) != 1 || got[0] != "fixture" {
		t.Fatalf("expected fallback, got %v", got)
	}

	t.Setenv("LIST_TEST", "fixture, http ,")
	got = listEnvOrDefault("LIST_TEST", fallback)
	if len(got) != 2 || got[0] != "fixture" || got[1] != "http" {
		t.Fatalf("expected trimmed entries, got %v", got)
	}

	t.Setenv("LIST_TEST", " , ,")
	got = listEnvOrDefault("LIST_TEST", fallback)
	if len(got) != 1 || got[0] != "fixture" {
		t.Fatalf("expected fallback for blank entries, got %v", got)
	}
}
