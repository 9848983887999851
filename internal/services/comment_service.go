package services

import (
	"errors"

	"socialink_backend/internal/models"
	"socialink_backend/internal/repositories"
	"socialink_backend/internal/services/dto"
	"socialink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CommentService interface {
	GetComments(postID uint, requesterID *uint) ([]dto.CommentResponse, error)
	CreateComment(userID, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(userID, commentID uint) error
	ToggleLike(userID, commentID uint) (*dto.ToggleResponse, error)
}

type CommentServiceImpl struct {
	commentRepo   repositories.CommentRepository
	postRepo      repositories.PostRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) CommentService {
	return &CommentServiceImpl{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *CommentServiceImpl) GetComments(postID uint, requesterID *uint) ([]dto.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]uint, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
	}

	likeCounts, err := s.commentRepo.LikeCounts(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	liked := map[uint]bool{}
	if requesterID != nil {
		liked, err = s.commentRepo.LikedByUser(*requesterID, ids)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		comment := &comments[i]
		items = append(items, dto.NewCommentResponse(comment,
			likeCounts[comment.ID], liked[comment.ID]))
	}
	return items, nil
}

func (s *CommentServiceImpl) CreateComment(userID, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		Content: req.Content,
		PostID:  postID,
		UserID:  userID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	comment.User = user

	if post.UserID != userID {
		s.notifications.NotifyComment(user, post, comment.ID)
	}

	response := dto.NewCommentResponse(comment, 0, false)
	return &response, nil
}

func (s *CommentServiceImpl) DeleteComment(userID, commentID uint) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}
	if comment.UserID != userID {
		return apperrors.ErrNotCommentOwner
	}
	if err := s.commentRepo.Delete(commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleLike flips the like state for (userID, commentID). Same contract as
// the post like toggle.
func (s *CommentServiceImpl) ToggleLike(userID, commentID uint) (*dto.ToggleResponse, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	_, err = s.commentRepo.FindLike(commentID, userID)
	if err == nil {
		if err := s.commentRepo.DeleteLike(commentID, userID); err != nil &&
			!apperrors.Is(err, repositories.ErrCommentLikeNotFound) {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ToggleResponse{Active: false}, nil
	}
	if !apperrors.Is(err, repositories.ErrCommentLikeNotFound) {
		return nil, apperrors.InternalError(err)
	}

	err = s.commentRepo.CreateLike(&models.CommentLike{CommentID: commentID, UserID: userID})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.ToggleResponse{Active: true}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	if comment.UserID != userID {
		actor, err := s.userRepo.FindByID(userID)
		if err == nil {
			s.notifications.NotifyCommentLike(actor, comment)
		}
	}

	return &dto.ToggleResponse{Active: true}, nil
}
