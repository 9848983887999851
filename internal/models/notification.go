package models

import "gorm.io/datatypes"

// Notification types
const (
	NotificationTypeLike        = "LIKE"
	NotificationTypeComment     = "COMMENT"
	NotificationTypeCommentLike = "COMMENT_LIKE"
	NotificationTypeFollow      = "FOLLOW"
)

type Notification struct {
	BaseModel
	UserID     uint           `gorm:"not null;index" json:"userId"` // recipient
	Type       string         `gorm:"not null" json:"type"`
	Content    string         `gorm:"not null" json:"content"`
	FromUserID uint           `gorm:"not null;index" json:"fromUserId"`
	PostID     *uint          `json:"postId,omitempty"`
	CommentID  *uint          `json:"commentId,omitempty"`
	IsRead     bool           `gorm:"default:false;index" json:"isRead"`
	Data       datatypes.JSON `json:"data,omitempty"` // actor snapshot for clients

	FromUser *User `gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE" json:"fromUser,omitempty"`
}
