package service

import (
	"context"
	"fmt"
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/pkg/apperror"
)

// slotMinutes is the booking granularity. Every service occupies one slot
// regardless of its nominal duration.
const slotMinutes = 60

var spanishWeekdays = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miercoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sabado",
}

// AppointmentService handles booking flows: discovering branches and
// specialists, computing free slots and creating or cancelling appointments.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	employeeRepo    repository.EmployeeRepository
	branchRepo      repository.BranchRepository
	customerRepo    repository.CustomerRepository

	now func() time.Time
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	employeeRepo repository.EmployeeRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		employeeRepo:    employeeRepo,
		branchRepo:      branchRepo,
		customerRepo:    customerRepo,
		now:             time.Now,
	}
}

// Branches lists all branches for the booking form
func (s *AppointmentService) Branches(ctx context.Context) ([]entity.Branch, error) {
	return s.branchRepo.List(ctx)
}

// Specialties lists the distinct specialties on offer
func (s *AppointmentService) Specialties(ctx context.Context) ([]string, error) {
	return s.employeeRepo.DistinctSpecialties(ctx)
}

// Specialists lists the active employees matching branch and specialty
func (s *AppointmentService) Specialists(ctx context.Context, branchID uint, specialty string) ([]entity.Employee, error) {
	if branchID == 0 || specialty == "" {
		return nil, apperror.NewValidationError("Sucursal y especialidad son requeridas")
	}
	return s.employeeRepo.ListByBranchAndSpecialty(ctx, branchID, specialty)
}

// AvailableSlots returns the employee's free HH:MM start times for a date.
// An empty list means the employee does not work that day or is fully booked.
func (s *AppointmentService) AvailableSlots(ctx context.Context, employeeID uint, date time.Time) ([]string, error) {
	if employeeID == 0 {
		return nil, apperror.NewValidationError("Empleado es requerido")
	}

	weekday := spanishWeekdays[date.Weekday()]
	schedule, err := s.employeeRepo.GetSchedule(ctx, employeeID, weekday)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return []string{}, nil
	}

	taken, err := s.appointmentRepo.TakenTimes(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	return freeSlots(schedule.StartTime, schedule.EndTime, taken), nil
}

// freeSlots walks the working window in fixed-size steps and drops the
// already booked start times. Malformed window bounds yield no slots.
func freeSlots(start, end string, taken []string) []string {
	startMin, okStart := parseClock(start)
	endMin, okEnd := parseClock(end)
	if !okStart || !okEnd || startMin >= endMin {
		return []string{}
	}

	booked := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		booked[t] = struct{}{}
	}

	slots := make([]string, 0, (endMin-startMin)/slotMinutes)
	for m := startMin; m+slotMinutes <= endMin; m += slotMinutes {
		slot := fmt.Sprintf("%02d:%02d", m/60, m%60)
		if _, ok := booked[slot]; ok {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// parseClock converts an HH:MM string to minutes since midnight
func parseClock(v string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// beforeToday compares calendar dates, not instants. The booking date is
// parsed as UTC midnight while now carries the configured zone, so an
// instant comparison (or Truncate, which works off the UTC epoch) would
// shift the cutoff by the local offset.
func beforeToday(date, now time.Time) bool {
	dy, dm, dd := date.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}

// BookingInput is a request to reserve a slot
type BookingInput struct {
	BranchID   uint
	CustomerID uint
	EmployeeID uint
	Date       time.Time
	Time       string
	Channel    string
}

// Book reserves a slot after re-checking it is still free
func (s *AppointmentService) Book(ctx context.Context, input BookingInput) (*entity.Appointment, error) {
	if input.BranchID == 0 || input.CustomerID == 0 || input.EmployeeID == 0 || input.Time == "" {
		return nil, apperror.NewValidationError("Sucursal, cliente, empleado y hora son requeridos")
	}
	if _, ok := parseClock(input.Time); !ok {
		return nil, apperror.NewValidationError("Hora invalida")
	}

	if beforeToday(input.Date, s.now()) {
		return nil, apperror.NewValidationError("No se puede agendar en fechas pasadas")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Cliente")
	}

	available, err := s.AvailableSlots(ctx, input.EmployeeID, input.Date)
	if err != nil {
		return nil, err
	}
	free := false
	for _, slot := range available {
		if slot == input.Time {
			free = true
			break
		}
	}
	if !free {
		return nil, apperror.NewConflictError("El horario seleccionado ya no esta disponible")
	}

	channel := input.Channel
	if channel == "" {
		channel = "Web"
	}

	appointment := &entity.Appointment{
		BranchID:   input.BranchID,
		CustomerID: input.CustomerID,
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		Time:       input.Time,
		Status:     enum.AppointmentPending,
		Channel:    channel,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListByCustomer returns a customer's booking history
func (s *AppointmentService) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Appointment, error) {
	return s.appointmentRepo.ListByCustomer(ctx, customerID)
}

// Cancel removes a pending appointment. Attended appointments are part of
// a settled sale and stay on record.
func (s *AppointmentService) Cancel(ctx context.Context, id uint, customerID uint) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Cita")
	}
	if customerID != 0 && appointment.CustomerID != customerID {
		return apperror.ErrForbidden
	}
	if appointment.Status != enum.AppointmentPending {
		return apperror.NewConflictError("Solo se pueden cancelar citas pendientes")
	}
	return s.appointmentRepo.Delete(ctx, id)
}
