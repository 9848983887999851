package models

type Post struct {
	BaseModel
	Content string `gorm:"not null" json:"content"`
	Image   string `json:"image,omitempty"`
	UserID  uint   `gorm:"not null;index" json:"userId"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// Like is presence-only state: a row means the user likes the post.
type Like struct {
	BaseModel
	PostID uint `gorm:"not null;index;uniqueIndex:idx_post_user_like" json:"postId"`
	UserID uint `gorm:"not null;index;uniqueIndex:idx_post_user_like" json:"userId"`
}
