package apperrors

import "net/http"

// Predefined domain errors shared across services. Messages on the
// credential errors are deliberately identical so callers cannot tell which
// field was wrong.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

var ErrPasswordsDoNotMatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match",
	http.StatusBadRequest,
)

var ErrUsernameTaken = New(
	CodeConflict,
	"auth",
	"Username is already taken",
	http.StatusConflict,
)

var ErrEmailRegistered = New(
	CodeConflict,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

var ErrInvalidVerificationCode = New(
	CodeUnauthorized,
	"auth",
	"Invalid code",
	http.StatusUnauthorized,
)

var ErrWrongCurrentPassword = New(
	CodeUnauthorized,
	"auth",
	"Current password is incorrect",
	http.StatusUnauthorized,
)

var ErrSelfFollow = New(
	CodeInvalidOperation,
	"users",
	"You cannot follow or unfollow yourself",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

var ErrPostNotFound = New(
	CodeNotFound,
	"posts",
	"Post not found",
	http.StatusNotFound,
)

var ErrCommentNotFound = New(
	CodeNotFound,
	"comments",
	"Comment not found",
	http.StatusNotFound,
)

var ErrNotPostOwner = New(
	CodeForbidden,
	"posts",
	"You are not allowed to delete this post",
	http.StatusForbidden,
)

var ErrNotCommentOwner = New(
	CodeForbidden,
	"comments",
	"You are not allowed to delete this comment",
	http.StatusForbidden,
)
