package models

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == "Admin"
}

type RegisterRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	Username  string `json:"username" form:"username" binding:"required"`
	Password  string `json:"password" form:"password" binding:"required,min=8"`
	FirstName string `json:"firstName,omitempty" form:"firstName"`
	LastName  string `json:"lastName,omitempty" form:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthResponse is what /Auth/login and /Auth/register return. Token and User
// are only set when Success is true; Message carries the backend's reason
// when it is not.
type AuthResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token,omitempty"`
	TokenExpiry string `json:"tokenExpiry,omitempty"`
	User        *User  `json:"user,omitempty"`
	Message     string `json:"message,omitempty"`
}
