package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/store"
	"github.com/tasknest/tasknest/pkg/cryptox"
)

const defaultLoginHistoryLimit = 50

// AdminService implements the user management surface. Authorization is the
// HTTP layer's problem; everything here assumes the caller is an admin.
type AdminService struct {
	Store store.Store
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser provisions an account with an explicit role. Unlike public
// registration no token is issued.
func (s *AdminService) CreateUser(ctx context.Context, email, password, name string, role domain.Role) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.NewValidation("email must not be empty")
	}
	if password == "" {
		return domain.User{}, domain.NewValidation("password must not be empty")
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return domain.User{}, domain.NewValidation("role must be USER or ADMIN")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id int64, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, domain.NewValidation("role must be USER or ADMIN")
	}

	if err := s.Store.Users().UpdateUserRole(ctx, id, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to update role: %w", err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the account. Tasks and login history follow via
// foreign key cascades.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListLoginHistory returns the most recent login attempts for a user.
func (s *AdminService) ListLoginHistory(ctx context.Context, userID int64, limit int) ([]domain.LoginRecord, error) {
	if limit <= 0 {
		limit = defaultLoginHistoryLimit
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	records, err := s.Store.LoginHistory().ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list login history: %w", err)
	}
	return records, nil
}
