package service

import (
	"context"
	"errors"
	"fmt"

	"user_accounts/internal/common"
	"user_accounts/internal/common/security"
	"user_accounts/internal/domain/model"
	"user_accounts/internal/domain/repository"

	"github.com/google/uuid"
)

// AccountService implements signup, login, and the administrative list/delete
// operations over the user store. It holds no mutable state of its own; all
// persistence goes through the injected repository.
type AccountService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenService
}

func NewAccountService(userRepo repository.UserRepository, tokens *security.TokenService) *AccountService {
	return &AccountService{userRepo: userRepo, tokens: tokens}
}

type SignupRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  model.Summary `json:"user"`
}

type DeleteResponse struct {
	Message     string        `json:"message"`
	DeletedUser model.Summary `json:"deletedUser"`
}

func (s *AccountService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	// Existence pre-check. Not atomic with the insert: the unique index on
	// users.email is the authoritative guard against concurrent signups.
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.WithMessage(common.ErrConflict, "user already exists")
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a unique violation
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user.Summary()}, nil
}

func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.WithMessage(common.ErrInvalidCredentials, "user does not exist")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.WithMessage(common.ErrInvalidCredentials, "invalid password")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user.Summary()}, nil
}

// ListUsers returns every persisted user. Password hashes never serialize.
func (s *AccountService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

func (s *AccountService) DeleteUser(ctx context.Context, id string) (*DeleteResponse, error) {
	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.WithMessage(common.ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return &DeleteResponse{
		Message:     "user deleted successfully",
		DeletedUser: user.Summary(),
	}, nil
}
