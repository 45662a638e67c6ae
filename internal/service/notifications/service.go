package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	notifRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/notification"
	"github.com/beepkz/BEEP-BookingService/pkg/ptr"
)

// Service сервис уведомлений: лента пользователя и напоминания о записях
type Service struct {
	repo         NotificationRepository
	appointments AppointmentReader
	logger       Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(repo NotificationRepository, appointments AppointmentReader, logger Logger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		logger:       logger,
	}
}

// GetUserNotifications возвращает уведомления пользователя, новые первыми
func (s *Service) GetUserNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserNotifications: repository error, user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - repository error: %v", ErrInternal, err)
	}
	return notifications, nil
}

// MarkRead помечает уведомление пользователя прочитанным
func (s *Service) MarkRead(ctx context.Context, userID, notificationID int64) error {
	if err := s.repo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, notifRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error, notification_id=%d: %v", notificationID, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// NotifyStatusChange создает уведомление о смене статуса записи.
// Ошибка не пробрасывается: смена статуса важнее уведомления о ней
func (s *Service) NotifyStatusChange(ctx context.Context, appt *domain.Appointment) {
	serviceName := ptr.Deref(appt.ServiceName)
	if serviceName == "" {
		serviceName = "услугу"
	}

	_, err := s.repo.Create(ctx, &domain.Notification{
		UserID:    appt.UserID,
		Type:      domain.NotificationStatus,
		Title:     "Статус записи изменён",
		Message:   fmt.Sprintf("Ваша запись на %s теперь в статусе «%s»", serviceName, appt.Status),
		RelatedID: appt.ID,
	})
	if err != nil {
		s.logger.Error("NotifyStatusChange: failed to create notification, appointment_id=%d: %v", appt.ID, err)
		return
	}

	s.logger.Info("NotifyStatusChange: notification created, appointment_id=%d", appt.ID)
}

// SendReminders создает напоминания по всем завтрашним активным записям.
// Повторный прогон за тот же день не дублирует уведомления
func (s *Service) SendReminders(ctx context.Context) error {
	tomorrow := time.Now().AddDate(0, 0, 1)

	appts, err := s.appointments.GetByDate(ctx, tomorrow)
	if err != nil {
		s.logger.Error("SendReminders: failed to load appointments: %v", err)
		return fmt.Errorf("%w: SendReminders - load appointments: %v", ErrInternal, err)
	}

	sent := 0
	for _, appt := range appts {
		exists, err := s.repo.ExistsForAppointment(ctx, appt.UserID, appt.ID)
		if err != nil {
			s.logger.Error("SendReminders: dedup check failed, appointment_id=%d: %v", appt.ID, err)
			continue
		}
		if exists {
			continue
		}

		serviceName := ptr.Deref(appt.ServiceName)
		if serviceName == "" {
			serviceName = "услугу"
		}
		masterName := ptr.Deref(appt.MasterName)
		if masterName == "" {
			masterName = "мастеру"
		}

		_, err = s.repo.Create(ctx, &domain.Notification{
			UserID: appt.UserID,
			Type:   domain.NotificationReminder,
			Title:  "Напоминание о записи",
			Message: fmt.Sprintf("Завтра в %s у вас запись на %s к %s",
				appt.Time, serviceName, masterName),
			RelatedID: appt.ID,
		})
		if err != nil {
			s.logger.Error("SendReminders: failed to create reminder, appointment_id=%d: %v", appt.ID, err)
			continue
		}
		sent++
	}

	s.logger.Info("SendReminders: %d reminders sent for %s", sent, tomorrow.Format(domain.DateFormat))
	return nil
}
