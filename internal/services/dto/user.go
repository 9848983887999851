package dto

type UpdateProfileRequest struct {
	UserName  *string `json:"userName" validate:"omitempty,min=3,max=30"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=50"`
	Picture   *string `json:"picture" validate:"omitempty,max=500"`
	// Password is bound only so the service can reject attempts to change it
	// through this endpoint.
	Password *string `json:"password"`
}

// ProfileResponse is a user together with follow statistics.
type ProfileResponse struct {
	UserResponse
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
	FollowedByUser bool  `json:"followedByUser"`
}
