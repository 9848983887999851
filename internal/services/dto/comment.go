package dto

import (
	"time"

	"socialink_backend/internal/models"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type CommentResponse struct {
	ID          uint          `json:"id"`
	Content     string        `json:"content"`
	PostID      uint          `json:"postId"`
	CreatedAt   time.Time     `json:"createdAt"`
	User        *UserResponse `json:"user"`
	LikeCount   int64         `json:"likeCount"`
	LikedByUser bool          `json:"likedByUser"`
}

func NewCommentResponse(comment *models.Comment, likeCount int64, likedByUser bool) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		Content:     comment.Content,
		PostID:      comment.PostID,
		CreatedAt:   comment.CreatedAt,
		User:        NewUserResponse(comment.User),
		LikeCount:   likeCount,
		LikedByUser: likedByUser,
	}
}
