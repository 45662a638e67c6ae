package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	masterRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/master"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// UseCase use case для получения свободных слотов мастера на дату
type UseCase struct {
	masterRepo      MasterRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	masterRepo MasterRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		masterRepo:      masterRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, date=%s", req.MasterID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	if _, err := uc.masterRepo.GetByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("GetAvailableSlots: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 3. Прошедшие даты отдаём пустым списком, не ошибкой
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.respond(req, []types.TimeString{}), nil
	}

	// 4. Получаем расписание мастера на день недели
	var entry *domain.ScheduleEntry
	entry, err := uc.masterRepo.GetScheduleForDay(ctx, req.MasterID, dayOfWeekMondayFirst(req.Date))
	if err != nil {
		if !errors.Is(err, masterRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		// Расписания нет - работаем по дефолтным часам
		entry = nil
	}

	start, end, active := workingHoursFor(entry)
	if !active {
		uc.logger.Info("GetAvailableSlots: master id=%d is off on %s", req.MasterID, req.Date.Format(domain.DateFormat))
		return uc.respond(req, []types.TimeString{}), nil
	}

	// 5. Генерируем все слоты рабочего дня
	allSlots, err := generateTimeSlots(start, end, domain.SlotStepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Убираем занятые времена (неотменённые записи)
	booked, err := uc.appointmentRepo.GetBookedTimes(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	available := filterBookedSlots(allSlots, booked)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for master=%d, date=%s",
		len(available), len(allSlots), req.MasterID, req.Date.Format(domain.DateFormat))

	return uc.respond(req, available), nil
}

func (uc *UseCase) respond(req *Request, slots []types.TimeString) *Response {
	return &Response{
		Date:     req.Date,
		MasterID: req.MasterID,
		Slots:    slots,
	}
}
