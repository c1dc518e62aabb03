package request

import (
	"villa-booking/internal/domain/user"
)

// LoginRequest accepts either the username or the email in Username.
// bcrypt ignores everything past 72 bytes, so longer passwords are refused
// rather than silently truncated.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Username, r.Password)
}
