package request

// HireEmployeeRequest registers a new staff member at a branch
type HireEmployeeRequest struct {
	BranchID   uint   `json:"id_sucursal" binding:"required"`
	Cedula     string `json:"cedula" binding:"required,len=10"`
	GivenNames string `json:"nombres" binding:"required,min=2,max=60"`
	Surnames   string `json:"apellidos" binding:"required,min=2,max=60"`
	Phone      string `json:"telefono" binding:"omitempty,max=10"`
	Specialty  string `json:"especialidad" binding:"omitempty,max=20"`
	Role       string `json:"rol" binding:"required"`
	Password   string `json:"contrasena" binding:"omitempty,min=6"`
}

// RestockRequest sets stock levels for a product at a branch
type RestockRequest struct {
	ProductID    uint `json:"id_producto" binding:"required"`
	CurrentStock int  `json:"stock_actual" binding:"min=0"`
	MinimumStock int  `json:"stock_minimo" binding:"min=0"`
}
