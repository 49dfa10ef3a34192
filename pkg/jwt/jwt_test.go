package jwt

import (
	"testing"
	"time"

	"siakad/backend/config"
)

func testManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-at-least-16-chars",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := testManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("user-1", "guru", "class-7a")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user_id user-1, got %s", claims.UserID)
	}
	if claims.Role != "guru" {
		t.Errorf("expected role guru, got %s", claims.Role)
	}
	if claims.ClassID != "class-7a" {
		t.Errorf("expected class_id class-7a, got %s", claims.ClassID)
	}
	if claims.TokenType != "access" {
		t.Errorf("expected token_type access, got %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("expected a jti to be set")
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.GenerateAccessToken("user-1", "admin", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := testManager(15 * time.Minute)
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-16-chars-long",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m1.GenerateAccessToken("user-1", "siswa", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m2.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := testManager(15 * time.Minute)
	if _, err := m.ParseToken("not-a-token"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestRefreshTokenType(t *testing.T) {
	m := testManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("user-1", "wali", "")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("expected token_type refresh, got %s", claims.TokenType)
	}
}
