package enum

// EmployeeRole represents the role of an employee within the business
type EmployeeRole string

const (
	RoleAdmin    EmployeeRole = "admin"
	RoleManager  EmployeeRole = "gerente"
	RoleCashier  EmployeeRole = "cajero"
	RoleEmployee EmployeeRole = "empleado"
	// RoleCustomer is not an employee role; it is assigned to customer
	// portal sessions at login time.
	RoleCustomer EmployeeRole = "cliente"
)

// String returns the string representation of the role
func (r EmployeeRole) String() string {
	return string(r)
}

// IsValid reports whether the role can be assigned to a staff member
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier, RoleEmployee:
		return true
	default:
		return false
	}
}
