package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/request"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/response"
)

// ManagerHandler handles a branch manager's endpoints: staff and inventory
// for their own branch. The branch is taken from the route, guarded by role.
type ManagerHandler struct {
	staffService *service.StaffService
}

// NewManagerHandler creates a new manager handler
func NewManagerHandler(staffService *service.StaffService) *ManagerHandler {
	return &ManagerHandler{staffService: staffService}
}

// Staff lists the branch's specialists
// @Summary List branch staff
// @Tags manager
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /manager/branches/{id}/staff [get]
func (h *ManagerHandler) Staff(c *gin.Context) {
	branchID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid branch id")
		return
	}

	staff, err := h.staffService.BranchStaff(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Staff loaded", staff)
}

// Hire registers a new employee at the branch
// @Summary Hire an employee
// @Tags manager
// @Accept json
// @Produce json
// @Param request body request.HireEmployeeRequest true "Employee data"
// @Success 201 {object} response.APIResponse
// @Router /manager/employees [post]
func (h *ManagerHandler) Hire(c *gin.Context) {
	var req request.HireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	role := enum.EmployeeRole(req.Role)
	if role == enum.RoleAdmin || role == enum.RoleManager {
		response.Forbidden(c, "Managers can only hire cashiers and specialists")
		return
	}

	employee, err := h.staffService.Hire(c.Request.Context(), service.HireInput{
		BranchID:   req.BranchID,
		Cedula:     req.Cedula,
		GivenNames: req.GivenNames,
		Surnames:   req.Surnames,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		Role:       role,
		Password:   req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Employee hired", employee)
}

// Fire removes an employee without pending appointments
// @Summary Remove an employee
// @Tags manager
// @Produce json
// @Success 204 "No Content"
// @Failure 409 {object} response.APIResponse
// @Router /manager/employees/{id} [delete]
func (h *ManagerHandler) Fire(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	if err := h.staffService.Fire(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Inventory returns the branch stock annotated with availability
// @Summary Branch inventory
// @Tags manager
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /manager/branches/{id}/inventory [get]
func (h *ManagerHandler) Inventory(c *gin.Context) {
	branchID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid branch id")
		return
	}

	inventory, err := h.staffService.BranchInventory(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Inventory loaded", inventory)
}

// Restock sets stock levels for a product at the branch
// @Summary Restock a product
// @Tags manager
// @Accept json
// @Produce json
// @Param request body request.RestockRequest true "Stock levels"
// @Success 200 {object} response.APIResponse
// @Router /manager/branches/{id}/inventory [put]
func (h *ManagerHandler) Restock(c *gin.Context) {
	branchID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid branch id")
		return
	}

	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.staffService.Restock(c.Request.Context(), service.RestockInput{
		BranchID:     branchID,
		ProductID:    req.ProductID,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated", nil)
}
