package service

import (
	"errors"
	"time"

	"guru_learn_backend/internal/config"
	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/repository"
	"guru_learn_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register hashes the password and creates the user, then issues a token so
// the client is signed in immediately. The plaintext never reaches the
// repository: a hashing failure aborts the whole operation.
func (s *AuthService) Register(user *model.User) (string, error) {
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if !user.Role.Valid() {
		return "", util.ErrInvalidRole
	}

	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashedPassword)
	user.LastLogin = time.Now()

	if err := s.UserRepo.Create(user); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.TouchLastLogin(user.ID); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginAdmin authenticates against the seeded administrator record. A valid
// credential pair on a non-admin account is still an authentication failure
// here, not an authorization one: the endpoint exists for admins only.
func (s *AuthService) LoginAdmin(email, password string) (string, error) {
	user, token, err := s.Login(email, password)
	if err != nil {
		return "", err
	}
	if user.Role != model.RoleAdmin {
		return "", util.ErrInvalidCredentials
	}
	return token, nil
}
