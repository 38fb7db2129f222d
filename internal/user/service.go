package user

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, input LoginInput) (*User, string, error)
	UpdateProfile(ctx context.Context, userID uint, avatarURL string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)

	EnsureAdmin(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(
	ctx context.Context,
	input RegisterInput,
) (*User, string, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Register"),
	)

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, "", apperr.Validationf("Username is required")
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.Validationf("Username already exists")
	}

	u := &User{
		Username: username,
		Role:     RoleConsumer,
	}

	// Auth stays prototype-grade: a password is optional, but when one is
	// supplied we store only its bcrypt hash.
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, "", apperr.Storage("user.Register", err)
		}
		u.PasswordHash = &hash
	}

	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, "", err
	}

	token, err := GenerateJWT(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, "", apperr.Storage("user.Register", err)
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return u, token, nil
}

func (s *service) Login(
	ctx context.Context,
	input LoginInput,
) (*User, string, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	// Accounts created without a password keep the prototype's open login.
	if u.PasswordHash != nil && !CheckPasswordHash(input.Password, *u.PasswordHash) {
		log.Warn("password mismatch", zap.Uint("user_id", u.ID))
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, "", apperr.Storage("user.Login", err)
	}

	log.Info("user logged in", zap.Uint("user_id", u.ID))
	return u, token, nil
}

func (s *service) UpdateProfile(
	ctx context.Context,
	userID uint,
	avatarURL string,
) (*User, error) {

	if userID == 0 {
		return nil, apperr.Validationf("User ID is required")
	}

	if err := s.repo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// EnsureAdmin seeds the admin account used by the dashboard.
func (s *service) EnsureAdmin(ctx context.Context) error {
	existing, err := s.repo.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	admin := &User{
		Username: "admin",
		Role:     RoleAdmin,
	}
	return s.repo.Create(ctx, admin)
}
