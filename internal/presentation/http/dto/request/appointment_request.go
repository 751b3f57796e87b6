package request

// BookAppointmentRequest reserves a slot with a specialist
type BookAppointmentRequest struct {
	BranchID   uint   `json:"id_sucursal" binding:"required"`
	EmployeeID uint   `json:"id_empleado" binding:"required"`
	Date       string `json:"fecha" binding:"required"` // YYYY-MM-DD
	Time       string `json:"hora" binding:"required"`  // HH:MM
	Channel    string `json:"canal_origen"`
}
