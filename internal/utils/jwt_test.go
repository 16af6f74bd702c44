package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "cli", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Client != "cli" {
		t.Errorf("expected client 'cli', got %q", token.Client)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "cli" {
		t.Errorf("expected subject 'cli', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		client   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "cli", time.Hour, "key"},
		{"empty client", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "cli", 0, "key"},
		{"negative duration", "iss", "cli", -time.Second, "key"},
		{"empty key", "iss", "cli", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.client, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "daemon-client", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	expired, err := GenerateJWTToken("iss", "daemon-client", time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSubjectString, err := noSubject.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr bool
	}{
		{"valid", valid.SignedString, "key", "iss", false},
		{"wrong key", valid.SignedString, "other", "iss", true},
		{"wrong issuer", valid.SignedString, "key", "other", true},
		{"expired", expired.SignedString, "key", "iss", true},
		{"garbage", "not.a.token", "key", "iss", true},
		{"empty subject", noSubjectString, "key", "iss", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if token.Client != "daemon-client" {
				t.Errorf("expected client daemon-client, got %q", token.Client)
			}
		})
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
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"empty", "", "", true},
		{"no token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorization) {
					t.Fatalf("expected ErrInvalidAuthorization, got %v", err)
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
