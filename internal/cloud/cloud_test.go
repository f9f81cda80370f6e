package cloud

import (
	"context"
	"testing"
	"time"

	"cutiplan/internal/domain/planner"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	svc := New("test-secret", 0)

	profile, token, err := svc.Login(context.Background())
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if profile.ID == "" || profile.Email == "" {
		t.Fatalf("incomplete profile: %+v", profile)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != profile.ID {
		t.Fatalf("expected uid %s, got %s", profile.ID, claims.UserID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "u1", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestSaveFetchRoundTrip(t *testing.T) {
	svc := New("test-secret", 0)

	if _, ok, err := svc.Fetch(context.Background(), "u1"); err != nil || ok {
		t.Fatalf("expected no document, got ok=%v err=%v", ok, err)
	}

	data := planner.DefaultUserData()
	data.Entitlement = 18
	if err := svc.Save(context.Background(), "u1", data); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, ok, err := svc.Fetch(context.Background(), "u1")
	if err != nil || !ok {
		t.Fatalf("fetch failed: ok=%v err=%v", ok, err)
	}
	if got.Entitlement != 18 {
		t.Fatalf("unexpected document: %+v", got)
	}
	if got.LastUpdated == 0 {
		t.Fatal("expected lastUpdated stamp")
	}
}

func TestLatencyHonoursCancellation(t *testing.T) {
	svc := New("test-secret", time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := svc.Login(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
