package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/request"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/response"
)

// AdminHandler handles the platform admin endpoints: branch oversight and
// manager assignment.
type AdminHandler struct {
	staffService *service.StaffService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(staffService *service.StaffService) *AdminHandler {
	return &AdminHandler{staffService: staffService}
}

// Branches lists every branch with its assigned manager
// @Summary List branches with managers
// @Tags admin
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/branches [get]
func (h *AdminHandler) Branches(c *gin.Context) {
	overview, err := h.staffService.BranchesWithManagers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branches loaded", overview)
}

// UnmanagedBranches lists branches still needing a manager
// @Summary List branches without manager
// @Tags admin
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/branches/unmanaged [get]
func (h *AdminHandler) UnmanagedBranches(c *gin.Context) {
	branches, err := h.staffService.BranchesWithoutManager(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branches loaded", branches)
}

// HireManager assigns a new manager to a branch
// @Summary Hire a manager
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.HireEmployeeRequest true "Manager data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /admin/managers [post]
func (h *AdminHandler) HireManager(c *gin.Context) {
	var req request.HireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	manager, err := h.staffService.Hire(c.Request.Context(), service.HireInput{
		BranchID:   req.BranchID,
		Cedula:     req.Cedula,
		GivenNames: req.GivenNames,
		Surnames:   req.Surnames,
		Phone:      req.Phone,
		Role:       enum.RoleManager,
		Password:   req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Manager hired", manager)
}

// RemoveEmployee removes any non-admin employee
// @Summary Remove an employee
// @Tags admin
// @Produce json
// @Success 204 "No Content"
// @Router /admin/employees/{id} [delete]
func (h *AdminHandler) RemoveEmployee(c *gin.Context) {
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
