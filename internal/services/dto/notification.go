package dto

import (
	"time"

	"socialink_backend/internal/models"
)

type NotificationResponse struct {
	ID        uint          `json:"id"`
	Type      string        `json:"type"`
	Content   string        `json:"content"`
	PostID    *uint         `json:"postId,omitempty"`
	CommentID *uint         `json:"commentId,omitempty"`
	IsRead    bool          `json:"isRead"`
	CreatedAt time.Time     `json:"createdAt"`
	FromUser  *UserResponse `json:"fromUser"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalCount    int64                  `json:"totalCount"`
	UnreadCount   int64                  `json:"unreadCount"`
}

type MarkReadRequest struct {
	IDs []uint `json:"ids" validate:"omitempty,min=1"`
	All bool   `json:"all"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Content:   n.Content,
		PostID:    n.PostID,
		CommentID: n.CommentID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		FromUser:  NewUserResponse(n.FromUser),
	}
}
