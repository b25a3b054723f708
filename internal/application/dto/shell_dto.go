package dto

// OpenCardRequest body para abrir una tarjeta.
type OpenCardRequest struct {
	AppID string `json:"app_id" validate:"required,max=50"`
}

// CardResponse tarjeta abierta con su estado de animación.
type CardResponse struct {
	ID    string `json:"id"`
	AppID string `json:"app_id"`
	Title string `json:"title"`
	Anim  string `json:"anim"` // entering | "" | exiting
}

// DockEntry ícono del dock.
type DockEntry struct {
	AppID string `json:"app_id"`
	Title string `json:"title"`
}

// ShellResponse estado del escritorio de la sesión.
type ShellResponse struct {
	User  UserResponse   `json:"user"`
	Dock  []DockEntry    `json:"dock"`
	Cards []CardResponse `json:"cards"`
}

// CardViewResponse tarjeta y la vista de su módulo.
type CardViewResponse struct {
	Card CardResponse `json:"card"`
	View ViewResponse `json:"view"`
}

// ViewResponse vista renderizada de un módulo.
type ViewResponse struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
