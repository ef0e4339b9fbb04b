package get_services

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ndmitko/SLN-SchedulingService/internal/api/handlers"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/services
// Query params: includeInactive (optional, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/services - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Публичный каталог содержит только активные услуги
	activeOnly := r.URL.Query().Get("includeInactive") != "true"

	// Получаем услуги
	result, err := h.service.ListServices(r.Context(), salonID, activeOnly)
	if err != nil {
		h.logger.Error("GET /salons/{id}/services - Failed to get services: salon_id=%d, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/services - Services retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
