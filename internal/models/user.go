package models

type User struct {
	BaseModel
	UserName         *string `gorm:"uniqueIndex" json:"userName,omitempty"`
	Email            string  `gorm:"uniqueIndex;not null" json:"email"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Password         string  `gorm:"not null" json:"-"`
	Picture          string  `json:"picture,omitempty"`
	VerificationCode *string `json:"-"`

	// Relations
	Posts         []Post         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// DisplayName prefers the handle, falling back to the full name. Used in
// notification content.
func (u *User) DisplayName() string {
	if u.UserName != nil && *u.UserName != "" {
		return *u.UserName
	}
	return u.FirstName + " " + u.LastName
}

// Follow is a directed edge: follower follows following. The composite unique
// index is the only guard against duplicate edges under concurrent toggles.
type Follow struct {
	BaseModel
	FollowerID  uint `gorm:"not null;index;uniqueIndex:idx_follower_following" json:"followerId"`
	FollowingID uint `gorm:"not null;index;uniqueIndex:idx_follower_following" json:"followingId"`

	Follower  *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Following *User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"following,omitempty"`
}
