package handler

import (
	"errors"
	"net/http"

	"github.com/mflath/TImesheets/internal/apierror"
	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/infra"
	"github.com/mflath/TImesheets/internal/repository"
	"github.com/mflath/TImesheets/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TimesheetsHandler struct {
	svc               service.TimesheetService
	employees         repository.EmployeeRepository
	timesheets        repository.TimesheetRepository
	reportStoragePath string
}

func NewTimesheetsHandler(
	svc service.TimesheetService,
	employees repository.EmployeeRepository,
	timesheets repository.TimesheetRepository,
	reportStoragePath string,
) *TimesheetsHandler {
	return &TimesheetsHandler{
		svc:               svc,
		employees:         employees,
		timesheets:        timesheets,
		reportStoragePath: reportStoragePath,
	}
}

// List GET /api/timesheets
func (h *TimesheetsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/timesheets
func (h *TimesheetsHandler) Create(c *gin.Context) {
	var req dto.TimesheetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/timesheets/:id
func (h *TimesheetsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TimesheetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timesheet updated"})
}

// Delete DELETE /api/timesheets/:id
func (h *TimesheetsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timesheet deleted"})
}

// Balances GET /api/timesheets/employee/:id/balances
func (h *TimesheetsHandler) Balances(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Balances(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": resp})
}

// Report GET /api/timesheets/employee/:id/report — streams a generated PDF.
func (h *TimesheetsHandler) Report(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	employee, err := h.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Employee not found"))
			return
		}
		_ = c.Error(err)
		return
	}

	entries, err := h.timesheets.ListByEmployee(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	path, err := infra.GenerateTimesheetReport(employee, entries, h.reportStoragePath)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.FileAttachment(path, "timesheet_report.pdf")
}

// ListEmployees GET /api/timesheets/employees
func (h *TimesheetsHandler) ListEmployees(c *gin.Context) {
	resp, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateEmployee PUT /api/timesheets/employees/:id
func (h *TimesheetsHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateEmployee(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

// SubmitVacationRequest POST /api/timesheets/vacation-request
func (h *TimesheetsHandler) SubmitVacationRequest(c *gin.Context) {
	var req dto.VacationRequestCreate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitVacationRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Vacation request submitted successfully", "request": resp})
}

// DecideVacationRequest PUT /api/timesheets/vacation-request/:id
func (h *TimesheetsHandler) DecideVacationRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.VacationDecisionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.DecideVacationRequest(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vacation request " + req.Status})
}
