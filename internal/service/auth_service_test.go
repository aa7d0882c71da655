package service

import (
	"errors"
	"testing"

	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAuthService(repos.user, newTestConfig())

	user := &model.User{
		FullName: "Ann Example",
		Email:    "ann@example.com",
		Password: "s3cret-pass",
	}
	token, err := svc.Register(user)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Error("Register returned empty token")
	}

	stored, err := repos.user.FindByEmail("ann@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if stored.Password == "s3cret-pass" {
		t.Fatal("plaintext password stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify against the original password: %v", err)
	}
	if stored.Role != model.RoleUser {
		t.Errorf("role = %q, want default %q", stored.Role, model.RoleUser)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAuthService(repos.user, newTestConfig())

	first := &model.User{FullName: "Ann", Email: "dup@example.com", Password: "pw123456"}
	if _, err := svc.Register(first); err != nil {
		t.Fatalf("Register: %v", err)
	}

	second := &model.User{FullName: "Other Ann", Email: "dup@example.com", Password: "pw654321"}
	if _, err := svc.Register(second); !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("duplicate register error = %v, want ErrEmailRegistered", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAuthService(repos.user, newTestConfig())

	user := &model.User{FullName: "Ann", Email: "role@example.com", Password: "pw123456", Role: "superuser"}
	if _, err := svc.Register(user); !errors.Is(err, util.ErrInvalidRole) {
		t.Errorf("error = %v, want ErrInvalidRole", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cfg := newTestConfig()
	svc := NewAuthService(repos.user, cfg)

	reg := &model.User{FullName: "Ann", Email: "login@example.com", Password: "pw123456"}
	if _, err := svc.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := svc.Login("login@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "login@example.com" {
		t.Errorf("email = %q", user.Email)
	}

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Role != model.RoleUser {
		t.Errorf("token role = %q, want %q", claims.Role, model.RoleUser)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAuthService(repos.user, newTestConfig())

	reg := &model.User{FullName: "Ann", Email: "wrong@example.com", Password: "pw123456"}
	if _, err := svc.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login("wrong@example.com", "not-the-password"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "pw123456"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginAdminRejectsRegularUser(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAuthService(repos.user, newTestConfig())

	reg := &model.User{FullName: "Ann", Email: "plain@example.com", Password: "pw123456"}
	if _, err := svc.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.LoginAdmin("plain@example.com", "pw123456"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}

	admin := &model.User{FullName: "Root", Email: "root@example.com", Password: "pw123456", Role: model.RoleAdmin}
	if _, err := svc.Register(admin); err != nil {
		t.Fatalf("Register admin: %v", err)
	}
	if _, err := svc.LoginAdmin("root@example.com", "pw123456"); err != nil {
		t.Errorf("admin login failed: %v", err)
	}
}
