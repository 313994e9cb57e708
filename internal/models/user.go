package models

// User is a row in the users table.
// Password is stored exactly as submitted; nothing in this service hashes it.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"-"` // Don't return password in JSON
	Phone    string `json:"phone"`
}

// ProfileDocument is the companion MongoDB document holding a user's
// profile picture reference (a URL or path).
type ProfileDocument struct {
	UserID         int64  `bson:"user_id" json:"user_id"`
	ProfilePicture string `bson:"profile_picture" json:"profile_picture"`
}

// RegisterUserRequest is the registration payload.
type RegisterUserRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// UserDetailResponse is the lookup payload. ProfilePicture is null when the
// user has no companion document (or the document store is not configured).
type UserDetailResponse struct {
	UserID         int64   `json:"user_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
}

// MessageResponse is the success acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body; Detail carries the client-facing message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
