package services

import (
	"errors"

	"weddinghub_backend/internal/auth"
	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login verifies credentials and issues a session token. Unknown email,
// wrong password and passwordless accounts all produce the same error and
// take a bcrypt comparison, so responses do not leak which accounts exist.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			auth.BurnPasswordCheck(req.Password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.PasswordHash == "" {
		auth.BurnPasswordCheck(req.Password)
		logger.Warn("login attempt on passwordless account", "userId", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user logged in", "userId", user.ID, "role", user.Role)
	return &dto.LoginResponse{
		Token: token,
		User:  sessionUserFrom(user),
	}, nil
}

// RefreshSession re-reads the user and re-issues the token, repairing a
// stale vendor snapshot (verification may have changed since login).
func (s *AuthService) RefreshSession(userID string) (*dto.RefreshResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RefreshResponse{
		Token: token,
		User:  sessionUserFrom(user),
	}, nil
}

// Me returns the session user from the database, not from the claims, so
// the response is never stale.
func (s *AuthService) Me(userID string) (*dto.SessionUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	u := sessionUserFrom(user)
	return &u, nil
}

func sessionUserFrom(user *models.User) dto.SessionUser {
	u := dto.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
	if user.Vendor != nil {
		u.Vendor = &dto.SessionVendor{
			ID:                 user.Vendor.ID,
			BusinessName:       user.Vendor.BusinessName,
			Verified:           user.Vendor.Verified,
			VerificationStatus: string(user.Vendor.VerificationStatus),
		}
	}
	return u
}
