package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/handler/http/response"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdjustmentHandler interface {
	// Preview handles POST /adjustments/preview
	Preview(w http.ResponseWriter, r *http.Request)
	// Create handles POST /adjustments
	Create(w http.ResponseWriter, r *http.Request)
	// Get handles GET /adjustments/{id}
	Get(w http.ResponseWriter, r *http.Request)
	// List handles GET /adjustments
	List(w http.ResponseWriter, r *http.Request)
	// Export handles GET /adjustments/export
	Export(w http.ResponseWriter, r *http.Request)
	// Reasons handles GET /adjustments/reasons
	Reasons(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func (h *adjustmentHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req adjustment.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.adjustmentService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment saved successfully", result)
}

func (h *adjustmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid adjustment ID", nil)
		return
	}

	result, err := h.adjustmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseAdjustmentFilter(w, r)
	if !ok {
		return
	}

	result, err := h.adjustmentService.ListRecent(r.Context(), filter)
	if err != nil {
		slog.Error("List adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseAdjustmentFilter(w, r)
	if !ok {
		return
	}

	data, err := h.adjustmentService.ExportRecent(r.Context(), filter)
	if err != nil {
		slog.Error("Export adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("adjustments-%s.xlsx", time.Now().Format("2006-01-02"))
	response.Attachment(w, xlsxContentType, filename, data)
}

func (h *adjustmentHandlerImpl) Reasons(w http.ResponseWriter, r *http.Request) {
	response.Success(w, adjustment.ListReasons())
}

func parseAdjustmentFilter(w http.ResponseWriter, r *http.Request) (adjustment.AdjustmentFilter, bool) {
	var filter adjustment.AdjustmentFilter

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	if d := r.URL.Query().Get("days"); d != "" {
		days, err := strconv.Atoi(d)
		if err != nil {
			response.BadRequest(w, "days must be a number", map[string]string{"days": "must be a number"})
			return filter, false
		}
		filter.Days = days
	}

	return filter, true
}
