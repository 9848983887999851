package services

import (
	"errors"

	"socialink_backend/internal/models"
	"socialink_backend/internal/repositories"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(userID uint, requesterID *uint) (*dto.ProfileResponse, error)
	UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	DeleteAccount(userID uint) error
	ToggleFollow(followerID, followingID uint) (*dto.ToggleResponse, error)
	GetFollowers(userID uint) ([]dto.UserResponse, error)
	GetFollowing(userID uint) ([]dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	followRepo    repositories.FollowRepository
	notifications NotificationService
}

func NewUserService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	notifications NotificationService,
) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		followRepo:    followRepo,
		notifications: notifications,
	}
}

func (s *UserServiceImpl) GetProfile(userID uint, requesterID *uint) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	followers, err := s.followRepo.CountFollowers(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	following, err := s.followRepo.CountFollowing(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	followedByUser := false
	if requesterID != nil && *requesterID != userID {
		if _, err := s.followRepo.Find(*requesterID, userID); err == nil {
			followedByUser = true
		} else if !apperrors.Is(err, repositories.ErrFollowNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.ProfileResponse{
		UserResponse:   *dto.NewUserResponse(user),
		FollowerCount:  followers,
		FollowingCount: following,
		FollowedByUser: followedByUser,
	}, nil
}

func (s *UserServiceImpl) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.Password != nil {
		return nil, apperrors.NewBadRequestError("Password cannot be changed here, use the change-password endpoint")
	}

	fields := map[string]interface{}{}
	if req.UserName != nil {
		fields["user_name"] = *req.UserName
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Picture != nil {
		fields["picture"] = *req.Picture
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.userRepo.UpdateFields(userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) DeleteAccount(userID uint) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleFollow flips the follow edge follower -> following. Self-follow is
// rejected; the first "on" transition notifies the target.
func (s *UserServiceImpl) ToggleFollow(followerID, followingID uint) (*dto.ToggleResponse, error) {
	if followerID == followingID {
		return nil, apperrors.ErrSelfFollow
	}

	if _, err := s.userRepo.FindByID(followingID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	_, err := s.followRepo.Find(followerID, followingID)
	if err == nil {
		if err := s.followRepo.Delete(followerID, followingID); err != nil &&
			!apperrors.Is(err, repositories.ErrFollowNotFound) {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ToggleResponse{Active: false}, nil
	}
	if !apperrors.Is(err, repositories.ErrFollowNotFound) {
		return nil, apperrors.InternalError(err)
	}

	err = s.followRepo.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.ToggleResponse{Active: true}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	actor, err := s.userRepo.FindByID(followerID)
	if err == nil {
		s.notifications.NotifyFollow(actor, followingID)
	}

	return &dto.ToggleResponse{Active: true}, nil
}

func (s *UserServiceImpl) GetFollowers(userID uint) ([]dto.UserResponse, error) {
	follows, err := s.followRepo.ListFollowers(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users := make([]dto.UserResponse, 0, len(follows))
	for i := range follows {
		if follows[i].Follower != nil {
			users = append(users, *dto.NewUserResponse(follows[i].Follower))
		}
	}
	return users, nil
}

func (s *UserServiceImpl) GetFollowing(userID uint) ([]dto.UserResponse, error) {
	follows, err := s.followRepo.ListFollowing(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users := make([]dto.UserResponse, 0, len(follows))
	for i := range follows {
		if follows[i].Following != nil {
			users = append(users, *dto.NewUserResponse(follows[i].Following))
		}
	}
	return users, nil
}
