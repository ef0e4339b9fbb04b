package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	serviceStorage "github.com/ndmitko/SLN-SchedulingService/internal/infra/storage/service"
	userClient "github.com/ndmitko/SLN-SchedulingService/internal/integrations/userservice"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	settings        Settings
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		userClient:      userClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		settings:        settings,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, salon=%d, service=%d, date=%s, time=%s",
		req.UserID, req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Валидация времени записи (minBookingNoticeMinutes)
	if err := validateNotice(req.Date, req.StartTime, now, uc.settings.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: notice validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 6. Получаем профиль пользователя с graceful degradation
	// При недоступности UserService запись создается без имени клиента
	var clientName *string
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, userClient.ErrServiceDegraded) && !errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateAppointment: creating appointment without client name for user id=%d", req.UserID)
	} else if user.DisplayName != "" {
		clientName = &user.DisplayName
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем рабочие окна на день недели
		windows, err := uc.scheduleRepo.GetForWeekday(txCtx, req.SalonID, req.Date.Weekday())
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule for salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if len(windows) == 0 {
			uc.logger.Warn("CreateAppointment: salon id=%d is closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
			return ErrSalonClosed
		}

		// 7.2. Проверяем, что время начала лежит на сетке слотов
		if err := validateSlotStart(windows, req.StartTime, service.DurationMinutes, uc.settings.SlotStepMinutes); err != nil {
			uc.logger.Warn("CreateAppointment: slot start validation failed: %v", err)
			return err
		}

		// 7.3. Получаем блокирующие записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.SalonAppointmentsFilter{
			SalonID:      req.SalonID,
			StartDate:    &req.Date,
			EndDate:      &req.Date,
			OnlyBlocking: true,
		}

		appointments, err := uc.appointmentRepo.GetBySalonWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.4. Проверяем доступность слота
		overlaps, err := hasOverlap(req.StartTime, service.DurationMinutes, service.DurationMinutes, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}

		if overlaps {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.5. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			UserID:          req.UserID,
			SalonID:         req.SalonID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusConfirmed,
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			// Денормализация данных клиента
			ClientName: clientName,
			// Пожелания
			Notes: req.Notes,
		}

		// 7.6. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		SalonID:         result.SalonID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		ClientName:      result.ClientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
