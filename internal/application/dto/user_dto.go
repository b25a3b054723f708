package dto

// LoginRequest entrada para login con usuario y contraseña.
type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// UserResponse usuario de sesión (sin hash).
type UserResponse struct {
	ID      string `json:"id"`
	Usuario string `json:"usuario"`
	Role    string `json:"role"`
}

// LoginResponse token JWT y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
