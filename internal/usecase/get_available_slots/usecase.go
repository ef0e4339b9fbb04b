package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	serviceStorage "github.com/ndmitko/SLN-SchedulingService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	timeProvider    TimeProvider
	settings        Settings
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		timeProvider:    &RealTimeProvider{},
		settings:        settings,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, salon=%d, service=%d, date=%s",
		req.UserID, req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Выключенная услуга недоступна для записи
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Получаем рабочие окна на день недели запрошенной даты
	windows, err := uc.scheduleRepo.GetForWeekday(ctx, req.SalonID, req.Date.Weekday())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Салон закрыт в этот день - пустой список слотов, не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: salon id=%d is closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:      req.Date,
			SalonID:   req.SalonID,
			ServiceID: req.ServiceID,
			Slots:     []domain.AvailableSlot{},
		}, nil
	}

	// 6. Получаем блокирующие записи на эту дату
	filter := domain.SalonAppointmentsFilter{
		SalonID:      req.SalonID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
		OnlyBlocking: true, // cancelled и finalized время не занимают
	}

	appointments, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступные времена начала
	starts := computeAvailableSlots(windows, service.DurationMinutes, appointments, uc.settings.SlotStepMinutes, uc.logger)

	// 8. Для записи на сегодня отбрасываем слоты, до которых осталось меньше minBookingNotice
	if isSameDay(req.Date, now) {
		starts = filterPastStarts(starts, now, uc.settings.MinBookingNoticeMinutes)
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for salon=%d, service=%d, date=%s",
		len(starts), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		Slots:     toSlots(starts, service.DurationMinutes),
	}, nil
}
