package request

// LoginRequest represents a login request
type LoginRequest struct {
	Cedula   string `json:"cedula" binding:"required,len=10"`
	Password string `json:"contrasena" binding:"required"`
}

// RegisterRequest represents a customer portal registration
type RegisterRequest struct {
	Cedula     string `json:"cedula" binding:"required,len=10"`
	GivenNames string `json:"nombres" binding:"required,min=2,max=60"`
	Surnames   string `json:"apellidos" binding:"required,min=2,max=60"`
	Phone      string `json:"telefono" binding:"omitempty,max=10"`
	Email      string `json:"correo" binding:"omitempty,email"`
	Password   string `json:"contrasena" binding:"required,min=6"`
}
