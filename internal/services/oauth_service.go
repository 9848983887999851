package services

import (
	"socialink_backend/internal/auth"
	"socialink_backend/internal/logger"
	"socialink_backend/internal/models"
	"socialink_backend/internal/oauth"
	"socialink_backend/internal/repositories"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"
)

// OAuthResult is what the provider callback returns to the client.
type OAuthResult struct {
	Message      string            `json:"message"`
	User         *dto.UserResponse `json:"user"`
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
}

type OAuthService interface {
	// ValidateUser signs in an existing account or provisions a new one
	// from the provider profile. Accounts are matched by email only.
	ValidateUser(profile *oauth.Profile) (*OAuthResult, error)
}

type OAuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

func NewOAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService) OAuthService {
	return &OAuthServiceImpl{userRepo: userRepo, tokens: tokens}
}

func (s *OAuthServiceImpl) ValidateUser(profile *oauth.Profile) (*OAuthResult, error) {
	user, err := s.userRepo.FindByEmail(profile.Email)
	if err == nil {
		// Existing account. Stored fields stay untouched even if the
		// provider profile has newer names or picture.
		pair, err := s.tokens.Issue(user.ID, user.Email)
		if err != nil {
			return nil, err
		}
		return &OAuthResult{
			Message:      "signed in",
			User:         dto.NewUserResponse(user),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// Provision a new account. The random password satisfies the non-null
	// password invariant and is never surfaced.
	password, err := auth.GenerateRandomPassword(24)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user = &models.User{
		Email:     profile.Email,
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
		Picture:   profile.Picture,
		Password:  hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user provisioned via oauth", "user_id", user.ID)

	pair, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &OAuthResult{
		Message:      "created",
		User:         dto.NewUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
