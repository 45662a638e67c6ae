package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	catalogRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/catalog"
	masterRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/master"
)

// UseCase use case создания записи к мастеру
type UseCase struct {
	masterRepo      MasterRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	masterRepo MasterRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		masterRepo:      masterRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: user=%d, master=%d, service=%d, date=%s, time=%s",
		req.UserID, req.MasterID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Проверяем существование мастера
	if _, err := uc.masterRepo.GetByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("CreateAppointment: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 4. Проверяем существование услуги
	if _, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Время не должно быть занято другой активной записью
	booked, err := uc.appointmentRepo.GetBookedTimes(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}
	for _, t := range booked {
		if t == req.Time {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken for master=%d",
				req.Date.Format(domain.DateFormat), req.Time, req.MasterID)
			return nil, ErrSlotTaken
		}
	}

	// 6. Создаем запись в статусе pending
	appt, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
		UserID:    req.UserID,
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    domain.StatusPending,
		Comment:   strings.TrimSpace(req.Comment),
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, user=%d", appt.ID, req.UserID)
	return appt, nil
}
