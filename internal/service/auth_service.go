package service

import (
	"context"
	"errors"

	"github.com/mflath/TImesheets/internal/auth"
	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/model"
	"github.com/mflath/TImesheets/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuthService owns the account lifecycle: registration, login, deactivation,
// and the profile operations tied to the authenticated user.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserDetailResponse, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id uint) error
	Deactivate(ctx context.Context, id uint) error
	Reactivate(ctx context.Context, id uint) error
	UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) error
	ToggleTwoFactor(ctx context.Context, username string) (bool, error)
	SubmitFeedback(ctx context.Context, username, feedback string) error
	ListFeedback(ctx context.Context) ([]dto.FeedbackEntry, error)
}

type authService struct {
	repo   repository.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewAuthService(repo repository.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService) AuthService {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	_, err := s.repo.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       req.Username,
		HashedPassword: hash,
		Role:           req.Role,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Uint("user_id", user.ID).Msg("user registered")
	return &dto.RegisterResponse{Message: "User registered successfully", UserID: user.ID}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(user.HashedPassword, req.Password)
	if err != nil {
		// Stored hash is unreadable — a server-side problem, not the client's.
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	// Checked only after the password verified, so a credential probe cannot
	// tell a deactivated account from a nonexistent one.
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return &dto.LoginResponse{Message: "Login successful", Role: user.Role, Token: token}, nil
}

func (s *authService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, username, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i, u := range users {
		resp[i] = dto.UserResponse{
			ID:               u.ID,
			Username:         u.Username,
			Role:             u.Role,
			IsActive:         u.IsActive,
			DeactivationDate: u.DeactivationDate,
		}
	}
	return resp, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*dto.UserDetailResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.UserDetailResponse{
		ID:               u.ID,
		Username:         u.Username,
		Role:             u.Role,
		IsActive:         u.IsActive,
		DeactivationDate: u.DeactivationDate,
		PhoneNumber:      u.PhoneNumber,
		Email:            u.Email,
		TwoFactorEnabled: u.TwoFactorEnabled,
		Feedback:         u.Feedback,
	}, nil
}

func (s *authService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) error {
	return notFoundOr(s.repo.UpdateUsernameRole(ctx, id, req.Username, req.Role))
}

func (s *authService) DeleteUser(ctx context.Context, id uint) error {
	return notFoundOr(s.repo.Delete(ctx, id))
}

func (s *authService) Deactivate(ctx context.Context, id uint) error {
	return notFoundOr(s.repo.Deactivate(ctx, id))
}

func (s *authService) Reactivate(ctx context.Context, id uint) error {
	return notFoundOr(s.repo.Reactivate(ctx, id))
}

func (s *authService) UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) error {
	// The raw message came out of the bound JSON body, so it is stored as-is.
	var prefs *string
	if len(req.NotificationPreferences) > 0 {
		encoded := string(req.NotificationPreferences)
		prefs = &encoded
	}
	return notFoundOr(s.repo.UpdateProfile(ctx, username, req.PhoneNumber, req.Email, prefs))
}

func (s *authService) ToggleTwoFactor(ctx context.Context, username string) (bool, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	newState := !u.TwoFactorEnabled
	if err := s.repo.SetTwoFactor(ctx, username, newState); err != nil {
		return false, err
	}
	log.Info().Str("username", username).Bool("enabled", newState).Msg("two-factor toggled")
	return newState, nil
}

func (s *authService) SubmitFeedback(ctx context.Context, username, feedback string) error {
	return notFoundOr(s.repo.SaveFeedback(ctx, username, feedback))
}

func (s *authService) ListFeedback(ctx context.Context) ([]dto.FeedbackEntry, error) {
	users, err := s.repo.ListFeedback(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.FeedbackEntry, 0, len(users))
	for _, u := range users {
		if u.Feedback == nil {
			continue
		}
		entries = append(entries, dto.FeedbackEntry{Username: u.Username, Feedback: *u.Feedback})
	}
	return entries, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
