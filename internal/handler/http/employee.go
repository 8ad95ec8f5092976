package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/handler/http/response"
)

type EmployeeHandler interface {
	// List handles GET /employees
	List(w http.ResponseWriter, r *http.Request)
	// ImportRoster handles POST /employees/import
	ImportRoster(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) ImportRoster(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ImportRoster(r.Context())
	if err != nil {
		slog.Error("Import roster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster imported successfully", result)
}
