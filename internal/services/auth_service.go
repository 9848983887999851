package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"socialink_backend/internal/auth"
	"socialink_backend/internal/email"
	"socialink_backend/internal/logger"
	"socialink_backend/internal/models"
	"socialink_backend/internal/repositories"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"
)

type AuthService interface {
	SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(req *dto.SignInRequest) (*dto.AuthResponse, error)
	SignOut(userID uint) (*dto.MessageResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	ResetPassword(emailAddr string) (*dto.MessageResponse, error)
	VerifyCode(emailAddr, code string) (*dto.MessageResponse, error)
	ChangePassword(req *dto.ChangePasswordRequest) (*dto.MessageResponse, error)
	ChangeOwnPassword(userID uint, req *dto.ChangeOwnPasswordRequest) (*dto.MessageResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
	mailer   email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService, mailer email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func (s *AuthServiceImpl) SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordsDoNotMatch
	}

	// One combined lookup covers both conflict cases; the email match takes
	// priority when a single row collides on both fields.
	existing, err := s.userRepo.FindByEmailOrUserName(req.Email, req.UserName)
	if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		if existing.Email == req.Email {
			return nil, apperrors.ErrEmailRegistered
		}
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		UserName:  req.UserName,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	pair, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	logger.Info("user signed up", "user_id", user.ID)

	return &dto.AuthResponse{
		User:         dto.NewUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (s *AuthServiceImpl) SignIn(req *dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.NewUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// SignOut is a stateless acknowledgement. Issued tokens stay valid until
// they expire on their own.
func (s *AuthServiceImpl) SignOut(userID uint) (*dto.MessageResponse, error) {
	logger.Info("user signed out", "user_id", userID)
	return &dto.MessageResponse{Message: "Signed out successfully"}, nil
}

func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	pair, err := s.tokens.Rotate(refreshToken)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (s *AuthServiceImpl) ResetPassword(emailAddr string) (*dto.MessageResponse, error) {
	if _, err := s.userRepo.FindByEmail(emailAddr); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Overwrites any prior code.
	if err := s.userRepo.SetVerificationCode(emailAddr, &code); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Fire and forget. A mail outage must not roll back the code write.
	go func() {
		if err := s.mailer.SendPasswordResetCode(emailAddr, code); err != nil {
			logger.WithError(err).Error("failed to send reset code email", "email", emailAddr)
		}
	}()

	return &dto.MessageResponse{
		Message: fmt.Sprintf("code sent successfully to your email %s", emailAddr),
	}, nil
}

func (s *AuthServiceImpl) VerifyCode(emailAddr, code string) (*dto.MessageResponse, error) {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Exact string match, no normalization.
	if user.VerificationCode == nil || *user.VerificationCode != code {
		return nil, apperrors.ErrInvalidVerificationCode
	}

	// Single use.
	if err := s.userRepo.SetVerificationCode(emailAddr, nil); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: "Code verified successfully"}, nil
}

func (s *AuthServiceImpl) ChangePassword(req *dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordsDoNotMatch
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(req.Email, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: "Password changed successfully"}, nil
}

func (s *AuthServiceImpl) ChangeOwnPassword(userID uint, req *dto.ChangeOwnPasswordRequest) (*dto.MessageResponse, error) {
	if req.NewPassword != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordsDoNotMatch
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return nil, apperrors.ErrWrongCurrentPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{Message: "Password changed successfully"}, nil
}

// generateVerificationCode returns a 6-digit numeric one-time code.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
