package salon

import (
	"context"
	"fmt"

	"github.com/ndmitko/SLN-SchedulingService/internal/service/salon/models"
)

// Service сервис для работы с расписанием и каталогом услуг салона
type Service struct {
	scheduleRepo ScheduleRepository
	serviceRepo  ServiceRepository
	staffRepo    StaffRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса салона
func NewService(
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeeklySchedule получает недельное расписание салона
// Публичная операция, права доступа не проверяются
func (s *Service) GetWeeklySchedule(ctx context.Context, salonID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching schedule for salon=%d", salonID)

	weekly, err := s.scheduleRepo.GetWeekly(ctx, salonID)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(salonID, weekly), nil
}

// UpdateScheduleDay заменяет рабочие окна салона на день недели
// Доступно только сотрудникам салона
// Пустой список окон означает, что салон закрыт в этот день.
// Пересекающиеся окна допустимы: расчет слотов обрабатывает их независимо.
func (s *Service) UpdateScheduleDay(ctx context.Context, req *models.UpdateScheduleDayRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateScheduleDay: updating schedule for salon=%d, weekday=%s by user=%d",
		req.SalonID, req.Weekday, req.UserID)

	// Проверяем права доступа сотрудника
	if err := s.checkStaffAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем день недели
	weekday, err := models.ToWeekday(req.Weekday)
	if err != nil {
		s.logger.Warn("UpdateScheduleDay: invalid weekday=%s for salon=%d", req.Weekday, req.SalonID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidWeekday, req.Weekday)
	}

	// Валидируем окна: время должно парситься, начало должно быть раньше конца
	windows := req.ToDomainWindows()
	for _, w := range windows {
		if !w.IsValid() {
			s.logger.Warn("UpdateScheduleDay: invalid window %s-%s for salon=%d", w.StartTime, w.EndTime, req.SalonID)
			return nil, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, w.StartTime, w.EndTime)
		}
	}

	// Удаление и вставка окон выполняются атомарно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceDay(txCtx, req.SalonID, weekday, windows)
	})
	if err != nil {
		s.logger.Error("UpdateScheduleDay: failed to replace day for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdateScheduleDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateScheduleDay: successfully updated %d windows for salon=%d, weekday=%s",
		len(windows), req.SalonID, req.Weekday)

	// Возвращаем обновленное расписание
	weekly, err := s.scheduleRepo.GetWeekly(ctx, req.SalonID)
	if err != nil {
		s.logger.Error("UpdateScheduleDay: failed to fetch updated schedule for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdateScheduleDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(req.SalonID, weekly), nil
}

// ListServices получает каталог услуг салона
// Публичная операция возвращает только активные услуги
func (s *Service) ListServices(ctx context.Context, salonID int64, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for salon=%d, activeOnly=%t", salonID, activeOnly)

	services, err := s.serviceRepo.ListBySalon(ctx, salonID, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services for salon=%d", len(services), salonID)
	return models.FromDomainServiceList(services), nil
}

// checkStaffAccess проверяет, что пользователь является сотрудником салона
func (s *Service) checkStaffAccess(ctx context.Context, salonID int64, userID int64) error {
	isStaff, err := s.staffRepo.IsStaff(ctx, salonID, userID)
	if err != nil {
		s.logger.Error("checkStaffAccess: failed to check staff for salon=%d, user=%d: %v", salonID, userID, err)
		return fmt.Errorf("%w: checkStaffAccess - repository error: %v", ErrInternal, err)
	}

	if !isStaff {
		s.logger.Warn("checkStaffAccess: user=%d is not staff of salon=%d", userID, salonID)
		return ErrAccessDenied
	}

	return nil
}
