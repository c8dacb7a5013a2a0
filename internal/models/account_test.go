package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeEmailCollapsesCase(t *testing.T) {
	if NormalizeEmail("A@x.com") != NormalizeEmail("a@X.COM") {
		t.Fatal("emails differing only by case should normalize identically")
	}
	if got := NormalizeEmail("  User@Example.com "); got != "user@example.com" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestAccountJSONHidesCredential(t *testing.T) {
	body, err := json.Marshal(Account{
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$secret",
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(body), "secret") || strings.Contains(string(body), "passwordHash") {
		t.Fatalf("credential material leaked into JSON: %s", body)
	}
}
