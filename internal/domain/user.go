package domain

import "time"

// User holds login credentials and the role issued into tokens.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateUserRequest holds parameters for registering a new user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate checks that the request is well-formed.
func (r *CreateUserRequest) Validate() error {
	if r.Email == "" {
		return ErrValidation("email is required")
	}
	if r.Password == "" {
		return ErrValidation("password is required")
	}
	if !ValidLoginRole(r.Role) {
		return ErrValidation("role must be 'brand' or 'influencer'")
	}
	return nil
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that the request is well-formed.
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ErrValidation("email and password are required")
	}
	return nil
}

// LoginResult is the response payload for a successful login.
type LoginResult struct {
	Message     string    `json:"message"`
	AccessToken string    `json:"accessToken"`
	User        LoginUser `json:"user"`
}

// LoginUser is the user summary embedded in a login response. Profile is
// the brand or influencer record linked to the user, depending on role,
// or nil when none is linked yet.
type LoginUser struct {
	ID      string      `json:"id"`
	Email   string      `json:"email"`
	Role    Role        `json:"role"`
	Profile interface{} `json:"profile"`
}
