package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	apptRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/appointment"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// Service сервис управления записями: просмотр, изменение, отмена, удаление.
// Создание живёт в usecase create_appointment, там своя валидация справочников
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetUserAppointments возвращает записи пользователя, новые первыми
func (s *Service) GetUserAppointments(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	appts, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error, user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}
	return appts, nil
}

// GetByID возвращает запись пользователя. Чужая запись неотличима от несуществующей
func (s *Service) GetByID(ctx context.Context, userID, appointmentID int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error, appointment_id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.UserID != userID {
		s.logger.Warn("GetByID: ownership mismatch, appointment_id=%d, user_id=%d", appointmentID, userID)
		return nil, ErrAppointmentNotFound
	}

	return appt, nil
}

// Update меняет дату, время и комментарий записи
func (s *Service) Update(ctx context.Context, userID, appointmentID int64, date time.Time, t types.TimeString, comment string) (*domain.Appointment, error) {
	if date.IsZero() || t == "" {
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}
	if len(comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment too long", ErrInvalidInput)
	}

	appt, err := s.GetByID(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeUpdated() {
		s.logger.Warn("Update: appointment_id=%d in status %s, edit rejected", appointmentID, appt.Status)
		return nil, ErrNotUpdatable
	}

	if err := s.repo.Update(ctx, appointmentID, date, t, comment); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error, appointment_id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.GetByID(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: appointment_id=%d rescheduled to %s %s", appointmentID, date.Format(domain.DateFormat), t)
	return updated, nil
}

// Cancel переводит запись в статус cancelled
func (s *Service) Cancel(ctx context.Context, userID, appointmentID int64) (*domain.Appointment, error) {
	appt, err := s.GetByID(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment_id=%d in status %s, cancel rejected", appointmentID, appt.Status)
		return nil, ErrNotCancellable
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error, appointment_id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled

	s.logger.Info("Cancel: appointment_id=%d cancelled by user_id=%d", appointmentID, userID)
	return appt, nil
}

// Delete удаляет запись насовсем. Разрешено только для отменённых записей
func (s *Service) Delete(ctx context.Context, userID, appointmentID int64) error {
	appt, err := s.GetByID(ctx, userID, appointmentID)
	if err != nil {
		return err
	}

	if !appt.CanBeDeleted() {
		s.logger.Warn("Delete: appointment_id=%d in status %s, delete rejected", appointmentID, appt.Status)
		return ErrNotDeletable
	}

	if err := s.repo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error, appointment_id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment_id=%d deleted by user_id=%d", appointmentID, userID)
	return nil
}
