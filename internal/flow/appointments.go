package flow

import (
	"context"
	"fmt"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

const (
	msgAppointmentsLoadFailed = "не удалось загрузить записи"
	msgAppointmentNotFound    = "запись не найдена"
	msgCancelConfirm          = "Отменить запись?"
	msgCancelNotAllowed       = "эту запись уже нельзя отменить"
	msgCancelFailed           = "не удалось отменить запись"
	msgCancelOK               = "запись отменена"
	msgDeleteConfirm          = "Удалить запись без возможности восстановления?"
	msgDeleteNotAllowed       = "удалить можно только отменённую запись"
	msgDeleteFailed           = "не удалось удалить запись"
	msgDeleteOK               = "запись удалена"
	msgUpdateFailed           = "не удалось изменить запись"
	msgUpdateOK               = "запись изменена"

	fallbackServiceName = "не указана"
	fallbackMasterName  = "не назначен"
)

// AppointmentView запись, подготовленная к показу в списке
type AppointmentView struct {
	ID          int64
	ServiceName string
	MasterName  string
	Date        string
	Time        string
	Status      string
	Comment     string
}

// LoadAppointments загружает записи пользователя и заменяет список в сессии
func (s *Session) LoadAppointments(ctx context.Context) error {
	appointments, err := s.client.Appointments(ctx)
	if err != nil {
		s.logger.Error("LoadAppointments: %v", err)
		s.notifier.Notify(msgAppointmentsLoadFailed)
		return err
	}

	s.mu.Lock()
	s.appointments = appointments
	s.mu.Unlock()

	s.logger.Info("LoadAppointments: loaded %d appointments", len(appointments))
	return nil
}

// AppointmentViews возвращает записи в виде, готовом к показу.
// Сервер может не прислать имена услуги и мастера, подставляем заглушки
func (s *Session) AppointmentViews() []AppointmentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]AppointmentView, 0, len(s.appointments))
	for _, a := range s.appointments {
		view := AppointmentView{
			ID:          a.ID,
			ServiceName: fallbackServiceName,
			MasterName:  fallbackMasterName,
			Date:        a.Date,
			Time:        a.Time,
			Status:      a.Status,
			Comment:     a.Comment,
		}
		if a.ServiceName != nil && *a.ServiceName != "" {
			view.ServiceName = *a.ServiceName
		}
		if a.MasterName != nil && *a.MasterName != "" {
			view.MasterName = *a.MasterName
		}
		views = append(views, view)
	}
	return views
}

// CancelAppointment отменяет запись после подтверждения пользователем.
// Отменить можно только запись в статусе pending или confirmed
func (s *Session) CancelAppointment(ctx context.Context, id int64) error {
	appt, ok := s.findAppointment(id)
	if !ok {
		s.notifier.Notify(msgAppointmentNotFound)
		return &ValidationError{Message: msgAppointmentNotFound}
	}

	if appt.Status != apiclient.StatusPending && appt.Status != apiclient.StatusConfirmed {
		s.notifier.Notify(msgCancelNotAllowed)
		return &ValidationError{Message: msgCancelNotAllowed}
	}

	if !s.confirmer.Confirm(msgCancelConfirm) {
		s.logger.Info("CancelAppointment: declined by user, id=%d", id)
		return nil
	}

	if _, err := s.client.CancelAppointment(ctx, id); err != nil {
		s.logger.Error("CancelAppointment: id=%d: %v", id, err)
		s.notifier.Notify(msgCancelFailed)
		return err
	}

	s.logger.Info("CancelAppointment: cancelled, id=%d", id)
	s.notifier.Notify(msgCancelOK)
	return s.LoadAppointments(ctx)
}

// DeleteAppointment удаляет запись после подтверждения пользователем.
// Запрос уходит только если сессия сама видела запись в статусе cancelled:
// это защищает от удаления по устаревшему списку
func (s *Session) DeleteAppointment(ctx context.Context, id int64) error {
	appt, ok := s.findAppointment(id)
	if !ok {
		s.notifier.Notify(msgAppointmentNotFound)
		return &ValidationError{Message: msgAppointmentNotFound}
	}

	if appt.Status != apiclient.StatusCancelled {
		s.notifier.Notify(msgDeleteNotAllowed)
		return &ValidationError{Message: msgDeleteNotAllowed}
	}

	if !s.confirmer.Confirm(msgDeleteConfirm) {
		s.logger.Info("DeleteAppointment: declined by user, id=%d", id)
		return nil
	}

	if err := s.client.DeleteAppointment(ctx, id); err != nil {
		s.logger.Error("DeleteAppointment: id=%d: %v", id, err)
		s.notifier.Notify(msgDeleteFailed)
		return err
	}

	s.logger.Info("DeleteAppointment: deleted, id=%d", id)
	s.notifier.Notify(msgDeleteOK)
	return s.LoadAppointments(ctx)
}

// EditAppointment переносит запись на другие дату и время.
// Перед изменением запись перечитывается с сервера, статус мог измениться
func (s *Session) EditAppointment(ctx context.Context, id int64, date, timeSlot, comment string) error {
	appt, err := s.client.Appointment(ctx, id)
	if err != nil {
		s.logger.Error("EditAppointment: fetch id=%d: %v", id, err)
		s.notifier.Notify(msgUpdateFailed)
		return err
	}

	if appt.Status != apiclient.StatusPending && appt.Status != apiclient.StatusConfirmed {
		msg := fmt.Sprintf("запись в статусе %q изменить нельзя", appt.Status)
		s.notifier.Notify(msg)
		return &ValidationError{Message: msg}
	}

	if _, err := s.client.UpdateAppointment(ctx, id, apiclient.UpdateAppointmentRequest{
		Date:    date,
		Time:    timeSlot,
		Comment: comment,
	}); err != nil {
		s.logger.Error("EditAppointment: update id=%d: %v", id, err)
		s.notifier.Notify(msgUpdateFailed)
		return err
	}

	s.logger.Info("EditAppointment: updated, id=%d", id)
	s.notifier.Notify(msgUpdateOK)
	return s.LoadAppointments(ctx)
}

// findAppointment ищет запись в загруженном списке сессии
func (s *Session) findAppointment(id int64) (apiclient.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return apiclient.Appointment{}, false
}
