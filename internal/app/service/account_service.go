package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"idento/internal/app/authz"
	"idento/internal/app/session"
	"idento/internal/common"
	"idento/internal/common/security"
	"idento/internal/domain/model"
	"idento/internal/domain/repository"
)

// AccountService orchestrates the user-record lifecycle: signup, login,
// admin user management, password change, and the startup admin seed.
// Each operation is a single logical transaction against the store; the
// email unique constraint is the race-safety mechanism for concurrent
// signups.
type AccountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

type CreateUserRequest struct {
	Name     string
	Email    string
	Role     model.Role
	Password string
}

// NormalizeEmail lowercases and trims an email. All store lookups and
// writes go through this, so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a self-service student account. No auto-login.
func (s *AccountService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}
	return s.createAccount(ctx, email, req.Name, model.RoleStudent, req.Password)
}

// Login verifies credentials. Unknown email and wrong password yield the
// same error so the response does not reveal which accounts exist.
func (s *AccountService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !security.CheckPasswordHash(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}
	return user, nil
}

// CreateUser is the admin-only variant of signup with a caller-chosen role.
func (s *AccountService) CreateUser(ctx context.Context, actor session.Identity, req CreateUserRequest) (*model.User, error) {
	if !authz.Allowed(actor, model.RoleAdmin) {
		return nil, common.ErrAccessDenied
	}
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}
	role, err := model.ParseRole(string(req.Role))
	if err != nil {
		return nil, common.ErrBadRequest
	}
	return s.createAccount(ctx, email, req.Name, role, req.Password)
}

// createAccount runs the shared duplicate and policy checks, hashes the
// password, and persists the record.
func (s *AccountService) createAccount(ctx context.Context, email, name string, role model.Role, password string) (*model.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if ok, reason := security.ValidatePasswordPolicy(password); !ok {
		return nil, &common.WeakPasswordError{Reason: reason}
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent writer may land first; the unique constraint
		// surfaces as ErrEmailTaken here.
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a non-admin account. Admin accounts can never be
// deleted this way, regardless of who asks.
func (s *AccountService) DeleteUser(ctx context.Context, actor session.Identity, targetID int64) error {
	if !authz.Allowed(actor, model.RoleAdmin) {
		return common.ErrAccessDenied
	}
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == model.RoleAdmin {
		return common.ErrForbiddenAdminDelete
	}
	return s.userRepo.Delete(ctx, targetID)
}

// ListUsers returns all accounts in stable id order.
func (s *AccountService) ListUsers(ctx context.Context, actor session.Identity) ([]model.User, error) {
	if !authz.Allowed(actor, model.RoleAdmin) {
		return nil, common.ErrAccessDenied
	}
	return s.userRepo.ListAll(ctx)
}

// ChangePassword rotates the actor's own password. Existing sessions
// stay valid; there is no forced re-login.
func (s *AccountService) ChangePassword(ctx context.Context, actor session.Identity, oldPassword, newPassword string) error {
	if !actor.IsAuthenticated() {
		return common.ErrAccessDenied
	}
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !security.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return common.ErrInvalidCredentials
	}
	if ok, reason := security.ValidatePasswordPolicy(newPassword); !ok {
		return &common.WeakPasswordError{Reason: reason}
	}
	hashed, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed
	return s.userRepo.Update(ctx, user)
}

// SeedAdmin creates the bootstrap admin account when no admin exists.
// Idempotent across restarts. The default credential is a documented
// bootstrap convenience and should be rotated after first login.
func (s *AccountService) SeedAdmin(ctx context.Context, email, name, password string) error {
	count, err := s.userRepo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	admin := &model.User{
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		// Two replicas racing the seed: the loser hits the unique
		// constraint, which still leaves exactly one admin.
		if errors.Is(err, common.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	return nil
}
