package repositories

import (
	"errors"

	"socialink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFollowNotFound = errors.New("follow relation not found")

type FollowRepository interface {
	Find(followerID, followingID uint) (*models.Follow, error)
	Create(follow *models.Follow) error
	Delete(followerID, followingID uint) error
	ListFollowers(userID uint) ([]models.Follow, error)
	ListFollowing(userID uint) ([]models.Follow, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

type FollowRepositoryImpl struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &FollowRepositoryImpl{db: db}
}

func (r *FollowRepositoryImpl) Find(followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.First(&follow, "follower_id = ? AND following_id = ?", followerID, followingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}
	return &follow, nil
}

func (r *FollowRepositoryImpl) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *FollowRepositoryImpl) Delete(followerID, followingID uint) error {
	result := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *FollowRepositoryImpl) ListFollowers(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}

func (r *FollowRepositoryImpl) ListFollowing(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}

func (r *FollowRepositoryImpl) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FollowRepositoryImpl) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
