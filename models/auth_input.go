package models

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone" binding:"required,len=10,numeric"`
	Password string  `json:"password" binding:"required,min=6"`
	Address  Address `json:"address"`
	Role     Role    `json:"role,omitempty" binding:"omitempty,oneof=customer provider"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
