package models

type Comment struct {
	BaseModel
	Content string `gorm:"not null" json:"content"`
	PostID  uint   `gorm:"not null;index" json:"postId"`
	UserID  uint   `gorm:"not null;index" json:"userId"`

	User  *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes []CommentLike `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

// CommentLike mirrors Like for comments.
type CommentLike struct {
	BaseModel
	CommentID uint `gorm:"not null;index;uniqueIndex:idx_comment_user_like" json:"commentId"`
	UserID    uint `gorm:"not null;index;uniqueIndex:idx_comment_user_like" json:"userId"`
}
