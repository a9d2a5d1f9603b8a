package auth

import (
	"github.com/arithahq/aritha/api/types/users"
)

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  users.Detail `json:"user"`
}

func (a LoginResponse) Equal(b LoginResponse) bool {
	return a.Token == b.Token && a.User.Equal(b.User)
}

// RegisterRequest is the POST /auth/register payload. Role defaults to "hr"
// server-side when empty.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// ChangePasswordRequest is the POST /auth/change-password payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// RecoveryAnswerRequest sets the recovery answer for the first time.
type RecoveryAnswerRequest struct {
	Answer string `json:"answer"`
}

// UpdateRecoveryAnswerRequest rotates the recovery answer; the current one
// must be verified.
type UpdateRecoveryAnswerRequest struct {
	CurrentAnswer string `json:"currentAnswer"`
	NewAnswer     string `json:"newAnswer"`
}
