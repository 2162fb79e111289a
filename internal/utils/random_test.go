package utils

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	s := RandomString(16)
	if len(s) != 16 {
		t.Fatalf("expected 16 characters, got %d", len(s))
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			t.Fatalf("unexpected character %q in %q", r, s)
		}
	}

	if RandomString(0) != "" {
		t.Fatal("expected empty string for zero size")
	}
	if RandomString(-3) != "" {
		t.Fatal("expected empty string for negative size")
	}
}

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID(10)
	if !strings.HasPrefix(id, "IW-") {
		t.Fatalf("expected IW- prefix, got %q", id)
	}
	if len(id) != len("IW-")+10 {
		t.Fatalf("unexpected length: %q", id)
	}
}

func TestNewUUIDString(t *testing.T) {
	s := NewUUIDString()
	if len(s) != 32 {
		t.Fatalf("expected 32 hex characters, got %d", len(s))
	}
	if strings.Contains(s, "-") {
		t.Fatalf("expected no dashes, got %q", s)
	}
}

func TestMakeSlug(t *testing.T) {
	slug := MakeSlug("Go In Practice", 4)
	if slug != strings.ToLower(slug) {
		t.Fatalf("expected lowercase slug, got %q", slug)
	}
	if !strings.HasPrefix(slug, "go-in-practice-") {
		t.Fatalf("unexpected slug shape: %q", slug)
	}
	if len(slug) != len("go-in-practice-")+4 {
		t.Fatalf("unexpected slug length: %q", slug)
	}
}
