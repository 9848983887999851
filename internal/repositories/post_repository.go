package repositories

import (
	"errors"

	"socialink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrLikeNotFound = errors.New("like not found")
)

// PostListQuery drives the hybrid cursor/offset feed query. When Cursor is
// set, Offset is ignored (skip=0).
type PostListQuery struct {
	UserID *uint
	Cursor *uint
	Offset int
	Limit  int
}

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	Delete(id uint) error
	// List fetches up to query.Limit rows; callers pass limit+1 to probe for
	// a next page. Newest first, ties broken by id descending.
	List(query PostListQuery) ([]models.Post, error)
	// Count ignores the cursor on purpose: the reported total stays stable
	// across a cursor walk.
	Count(userID *uint) (int64, error)

	LikeCounts(postIDs []uint) (map[uint]int64, error)
	CommentCounts(postIDs []uint) (map[uint]int64, error)
	LikedByUser(userID uint, postIDs []uint) (map[uint]bool, error)

	FindLike(postID, userID uint) (*models.Like, error)
	CreateLike(like *models.Like) error
	DeleteLike(postID, userID uint) error
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) List(query PostListQuery) ([]models.Post, error) {
	tx := r.db.Preload("User").Model(&models.Post{})

	if query.UserID != nil {
		tx = tx.Where("user_id = ?", *query.UserID)
	}
	if query.Cursor != nil {
		tx = tx.Where("id < ?", *query.Cursor)
	} else if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var posts []models.Post
	err := tx.Order("created_at DESC, id DESC").Limit(query.Limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) Count(userID *uint) (int64, error) {
	tx := r.db.Model(&models.Post{})
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}
	var count int64
	err := tx.Count(&count).Error
	return count, err
}

type countRow struct {
	ID  uint  `gorm:"column:id"`
	Cnt int64 `gorm:"column:cnt"`
}

func (r *PostRepositoryImpl) LikeCounts(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.Model(&models.Like{}).
		Select("post_id AS id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ID] = row.Cnt
	}
	return counts, nil
}

func (r *PostRepositoryImpl) CommentCounts(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.Model(&models.Comment{}).
		Select("post_id AS id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ID] = row.Cnt
	}
	return counts, nil
}

func (r *PostRepositoryImpl) LikedByUser(userID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *PostRepositoryImpl) FindLike(postID, userID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.First(&like, "post_id = ? AND user_id = ?", postID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *PostRepositoryImpl) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *PostRepositoryImpl) DeleteLike(postID, userID uint) error {
	result := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}
