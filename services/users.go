package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"medstore/models"
	"medstore/store"
	"medstore/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate checks an email and password pair. Unknown users and wrong
// passwords yield the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := utils.VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id models.UserID) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	v := &models.ValidationError{}
	email = normalizeEmail(email)
	if email == "" {
		v.Add("email", "is required")
	}
	if len(password) < 8 {
		v.Add("password", "must be at least 8 characters")
	}
	if role != models.RoleAdmin && role != models.RoleStaff {
		v.Add("role", "must be admin or staff")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           models.NewID[models.UserID](),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedAdmin creates the first administrator when the user collection is empty.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := s.store.CountUsers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	u, err := s.CreateUser(ctx, "Administrator", email, password, models.RoleAdmin)
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "seeded admin user", slog.String("email", u.Email))
	return nil
}
