package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ndmitko/SLN-SchedulingService/internal/api/handlers"
	"github.com/ndmitko/SLN-SchedulingService/internal/api/middleware"
	"github.com/ndmitko/SLN-SchedulingService/internal/service/salon"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeekday     = "некорректный день недели"
	msgInvalidWindow      = "некорректное рабочее окно, ожидается HH:MM и начало раньше конца"
	msgAccessDenied       = "доступ запрещен"
	msgUnauthorized       = "требуется аутентификация"
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

// Handle PUT /api/v1/salons/{salonId}/schedule/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/schedule/{weekday} - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Извлекаем salonId и weekday из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]
	weekday := vars["weekday"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/schedule/{weekday} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/schedule/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание дня
	result, err := h.service.UpdateScheduleDay(r.Context(), req.ToServiceRequest(userID, salonID, weekday))
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/schedule/{weekday} - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, salon.ErrInvalidWeekday):
			h.logger.Warn("PUT /salons/{id}/schedule/{weekday} - Invalid weekday: salon_id=%d, weekday=%s",
				salonID, weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, salon.ErrInvalidWindow):
			h.logger.Warn("PUT /salons/{id}/schedule/{weekday} - Invalid window: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /salons/{id}/schedule/{weekday} - Failed to update schedule: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/schedule/{weekday} - Schedule updated successfully: salon_id=%d, weekday=%s",
		salonID, weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
