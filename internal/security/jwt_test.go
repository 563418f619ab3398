package security_test

import (
	"testing"
	"time"

	"github.com/tazhibayda/jewel-service/internal/domain"
	"github.com/tazhibayda/jewel-service/internal/security"
)

func TestAccessRoundTrip(t *testing.T) {
	tok, err := security.MakeAccess("s3cret", "u1", domain.RoleAdmin, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	c, err := security.ParseAccess("s3cret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UID != "u1" || c.Role != domain.RoleAdmin {
		t.Fatalf("claims mismatch: %#v", c)
	}
	if c.ExpiresAt == nil || time.Until(c.ExpiresAt.Time) > time.Minute {
		t.Fatalf("bad expiry: %v", c.ExpiresAt)
	}
}

func TestAccessWrongSecret(t *testing.T) {
	tok, err := security.MakeAccess("s3cret", "u1", domain.RoleUser, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := security.ParseAccess("other", tok); err == nil {
		t.Fatal("token verified with wrong secret")
	}
}

func TestAccessExpired(t *testing.T) {
	tok, err := security.MakeAccess("s3cret", "u1", domain.RoleUser, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := security.ParseAccess("s3cret", tok); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestMpinDigest(t *testing.T) {
	h, err := security.HashMpin("1234")
	if err != nil {
		t.Fatal(err)
	}
	if h == "1234" {
		t.Fatal("mpin stored in the clear")
	}
	if !security.CheckMpin(h, "1234") {
		t.Fatal("correct mpin rejected")
	}
	if security.CheckMpin(h, "4321") {
		t.Fatal("wrong mpin accepted")
	}
}
