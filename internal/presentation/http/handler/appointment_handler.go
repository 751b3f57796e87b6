package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/request"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles the customer booking endpoints
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Branches lists all branches for the booking form
// @Summary List branches
// @Tags appointments
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /appointments/branches [get]
func (h *AppointmentHandler) Branches(c *gin.Context) {
	branches, err := h.appointmentService.Branches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branches loaded", branches)
}

// Specialties lists the distinct specialties on offer
// @Summary List specialties
// @Tags appointments
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /appointments/specialties [get]
func (h *AppointmentHandler) Specialties(c *gin.Context) {
	specialties, err := h.appointmentService.Specialties(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Specialties loaded", specialties)
}

// Specialists lists employees for a branch and specialty
// @Summary List specialists
// @Tags appointments
// @Produce json
// @Param id_sucursal query int true "Branch id"
// @Param especialidad query string true "Specialty"
// @Success 200 {object} response.APIResponse
// @Router /appointments/specialists [get]
func (h *AppointmentHandler) Specialists(c *gin.Context) {
	branchID := ParseIDQuery(c, "id_sucursal")
	specialty := c.Query("especialidad")

	specialists, err := h.appointmentService.Specialists(c.Request.Context(), branchID, specialty)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Specialists loaded", specialists)
}

// Slots lists an employee's free start times for a date
// @Summary List free slots
// @Tags appointments
// @Produce json
// @Param id_empleado query int true "Employee id"
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /appointments/slots [get]
func (h *AppointmentHandler) Slots(c *gin.Context) {
	employeeID := ParseIDQuery(c, "id_empleado")

	date, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	slots, err := h.appointmentService.AvailableSlots(c.Request.Context(), employeeID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Slots loaded", slots)
}

// Book reserves a slot for the authenticated customer
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body request.BookAppointmentRequest true "Booking"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req request.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	appointment, err := h.appointmentService.Book(c.Request.Context(), service.BookingInput{
		BranchID:   req.BranchID,
		CustomerID: GetUserID(c),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Time:       req.Time,
		Channel:    req.Channel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Cita agendada", appointment)
}

// Mine lists the authenticated customer's appointments
// @Summary List own appointments
// @Tags appointments
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /appointments/mine [get]
func (h *AppointmentHandler) Mine(c *gin.Context) {
	appointments, err := h.appointmentService.ListByCustomer(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Appointments loaded", appointments)
}

// Cancel removes one of the customer's pending appointments. Staff sessions
// can cancel any pending appointment.
// @Summary Cancel an appointment
// @Tags appointments
// @Produce json
// @Success 204 "No Content"
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	customerID := GetUserID(c)
	if GetUserRole(c) != string(enum.RoleCustomer) {
		customerID = 0
	}

	if err := h.appointmentService.Cancel(c.Request.Context(), id, customerID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
