package enum

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentPending  AppointmentStatus = "Pendiente"
	AppointmentAttended AppointmentStatus = "Atendida"
	AppointmentCanceled AppointmentStatus = "Cancelada"
)

// String returns the string representation of the status
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known lifecycle state
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentAttended, AppointmentCanceled:
		return true
	}
	return false
}
