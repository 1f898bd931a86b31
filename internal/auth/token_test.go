package auth

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(svc *TokenService, at time.Time) {
	svc.now = func() time.Time { return at }
}

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", 8*time.Hour)
	base := time.Now()
	fixedClock(svc, base)

	token, err := svc.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Still valid one hour in.
	fixedClock(svc, base.Add(time.Hour))
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate at +1h: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %s", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email claim, got %s", claims.Email)
	}
}

func TestValidateExpired(t *testing.T) {
	svc := NewTokenService("test-secret", 8*time.Hour)
	base := time.Now()
	fixedClock(svc, base)

	token, err := svc.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	fixedClock(svc, base.Add(9*time.Hour))
	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateTampered(t *testing.T) {
	svc := NewTokenService("test-secret", 8*time.Hour)

	token, err := svc.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip the final signature character.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	if _, err := svc.Validate(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 8*time.Hour)
	verifier := NewTokenService("secret-b", 8*time.Hour)

	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}
