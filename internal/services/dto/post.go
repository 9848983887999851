package dto

import (
	"time"

	"socialink_backend/internal/models"
)

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
	Image   string `json:"image" validate:"omitempty,max=500"`
}

// FeedQuery is the hybrid pagination input. When Cursor is set the offset is
// ignored; otherwise offset = (page-1)*limit.
type FeedQuery struct {
	Page   int   `form:"page" json:"page" validate:"min=0"`
	Limit  int   `form:"limit" json:"limit" validate:"min=0,max=100"`
	Cursor *uint `form:"cursor" json:"cursor"`
	UserID *uint `form:"userId" json:"userId"`
}

// PostResponse is a feed entry with engagement counters resolved for the
// requesting viewer.
type PostResponse struct {
	ID            uint          `json:"id"`
	Content       string        `json:"content"`
	Image         string        `json:"image,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	User          *UserResponse `json:"user"`
	LikesCount    int64         `json:"likesCount"`
	CommentsCount int64         `json:"commentsCount"`
	IsLiked       bool          `json:"isLiked"`
	HasComments   bool          `json:"hasComments"`
}

// FeedResponse is one feed page. NextCursor is set only when a further page
// exists.
type FeedResponse struct {
	Posts       []PostResponse `json:"posts"`
	HasNextPage bool           `json:"hasNextPage"`
	NextCursor  *uint          `json:"nextCursor,omitempty"`
	TotalCount  int64          `json:"totalCount"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// PostDetailResponse is a single post with its full comment thread.
type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

// ToggleResponse reports the resulting state of a like/follow toggle.
type ToggleResponse struct {
	Active bool `json:"active"`
}

func NewPostResponse(post *models.Post, likesCount, commentsCount int64, isLiked bool) PostResponse {
	return PostResponse{
		ID:            post.ID,
		Content:       post.Content,
		Image:         post.Image,
		CreatedAt:     post.CreatedAt,
		User:          NewUserResponse(post.User),
		LikesCount:    likesCount,
		CommentsCount: commentsCount,
		IsLiked:       isLiked,
		HasComments:   commentsCount > 0,
	}
}
