package util

import (
	"testing"
	"time"

	"guru_learn_backend/internal/model"
)

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: 42},
		FullName:  "Ann Example",
		Email:     "ann@example.com",
		Role:      model.RoleUser,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(testUser(), secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleUser {
		t.Errorf("Role = %q, want %q", claims.Role, model.RoleUser)
	}
	if claims.Email != "ann@example.com" {
		t.Errorf("Email = %q, want ann@example.com", claims.Email)
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(testUser(), secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, secret); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseJWT(tok, "secret"); err == nil {
			t.Errorf("ParseJWT(%q) succeeded, want error", tok)
		}
	}
}
