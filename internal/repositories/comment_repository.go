package repositories

import (
	"errors"

	"socialink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound     = errors.New("comment not found")
	ErrCommentLikeNotFound = errors.New("comment like not found")
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	Delete(id uint) error
	// ListByPost returns the full comment list for a post, newest first.
	ListByPost(postID uint) ([]models.Comment, error)

	LikeCounts(commentIDs []uint) (map[uint]int64, error)
	LikedByUser(userID uint, commentIDs []uint) (map[uint]bool, error)

	FindLike(commentID, userID uint) (*models.CommentLike, error)
	CreateLike(like *models.CommentLike) error
	DeleteLike(commentID, userID uint) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepositoryImpl) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepositoryImpl) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) LikeCounts(commentIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.Model(&models.CommentLike{}).
		Select("comment_id AS id, COUNT(*) AS cnt").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ID] = row.Cnt
	}
	return counts, nil
}

func (r *CommentRepositoryImpl) LikedByUser(userID uint, commentIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *CommentRepositoryImpl) FindLike(commentID, userID uint) (*models.CommentLike, error) {
	var like models.CommentLike
	err := r.db.First(&like, "comment_id = ? AND user_id = ?", commentID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *CommentRepositoryImpl) CreateLike(like *models.CommentLike) error {
	return r.db.Create(like).Error
}

func (r *CommentRepositoryImpl) DeleteLike(commentID, userID uint) error {
	result := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentLikeNotFound
	}
	return nil
}
