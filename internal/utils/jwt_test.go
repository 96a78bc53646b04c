package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vnshop/identity/models"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateSessionToken(issuer, userID, models.RoleUser, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.SubjectID != userID {
		t.Errorf("expected subject id %d, got %d", userID, token.SubjectID)
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.Role != models.RoleUser {
		t.Errorf("expected role %q, got %q", models.RoleUser, token.Role)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		role     models.Role
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", models.RoleUser, time.Hour, "key"},
		{"zero duration", "iss", models.RoleUser, 0, "key"},
		{"empty key", "iss", models.RoleUser, time.Hour, ""},
		{"unknown role", "iss", models.Role("root"), time.Hour, "key"},
		{"empty role", "iss", models.Role(""), time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, 1, tt.role, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"
	duration := time.Minute * 5

	genToken, err := GenerateSessionToken(issuer, userID, models.RoleAdmin, duration, key)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	parsedToken, err := ValidateSessionToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.SubjectID != userID {
		t.Errorf("expected subject id %d, got %d", userID, parsedToken.SubjectID)
	}
	if parsedToken.Role != models.RoleAdmin {
		t.Errorf("expected role %q, got %q", models.RoleAdmin, parsedToken.Role)
	}
}

func TestValidateSessionToken_Expired(t *testing.T) {
	key := "secret-key"
	issuer := "iss"

	genToken, err := GenerateSessionToken(issuer, 1, models.RoleUser, time.Nanosecond, key)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateSessionToken(genToken.SignedString, key, issuer)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for expired token, got: %v", err)
	}
}

func TestValidateSessionToken_WrongKey(t *testing.T) {
	genToken, err := GenerateSessionToken("iss", 1, models.RoleUser, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	_, err = ValidateSessionToken(genToken.SignedString, "wrong-key", "iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong key, got: %v", err)
	}
}

func TestValidateSessionToken_WrongIssuer(t *testing.T) {
	key := "secret-key"

	genToken, err := GenerateSessionToken("issuer-a", 1, models.RoleUser, time.Hour, key)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	_, err = ValidateSessionToken(genToken.SignedString, key, "issuer-b")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong issuer, got: %v", err)
	}
}

func TestValidateSessionToken_Tampered(t *testing.T) {
	key := "secret-key"
	issuer := "iss"

	genToken, err := GenerateSessionToken(issuer, 1, models.RoleUser, time.Hour, key)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	// flip the payload segment
	parts := strings.Split(genToken.SignedString, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", genToken.SignedString)
	}
	tampered := parts[0] + ".eyJzdWIiOiI5OTkifQ." + parts[2]

	_, err = ValidateSessionToken(tampered, key, issuer)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for tampered token, got: %v", err)
	}
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token", "key", "iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for garbage input, got: %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing scheme", "abc.def.ghi", "", true},
		{"empty", "", "", true},
		{"scheme only", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
