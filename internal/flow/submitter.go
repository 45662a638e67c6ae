package flow

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

const (
	msgMasterNotSelected = "выберите мастера"
	msgNoServiceChosen   = "выберите услугу"
	msgDateNotSelected   = "выберите дату"
	msgTimeNotSelected   = "выберите время"
	msgSubmitAuth        = "войдите, чтобы записаться к мастеру"
	msgSubmitFailed      = "не удалось создать запись"
	msgSubmitOK          = "запись создана"
)

// Submit создаёт запись из текущего выбора сессии.
// Проверки идут в порядке заполнения формы: мастер, услуга, дата, время.
// Пользователь получает первое незаполненное поле, а не общую ошибку
func (s *Session) Submit(ctx context.Context, comment string) (*apiclient.Appointment, error) {
	if !s.client.HasToken() {
		s.notifier.Notify(msgSubmitAuth)
		return nil, ErrAuthRequired
	}

	s.mu.Lock()
	masterID := s.selectedMasterID
	serviceID := s.selectedServiceID
	date := s.selectedDate
	timeSlot := s.selectedTime
	s.mu.Unlock()

	switch {
	case masterID == 0:
		s.notifier.Notify(msgMasterNotSelected)
		return nil, &ValidationError{Message: msgMasterNotSelected}
	case serviceID == 0:
		s.notifier.Notify(msgNoServiceChosen)
		return nil, &ValidationError{Message: msgNoServiceChosen}
	case date == "":
		s.notifier.Notify(msgDateNotSelected)
		return nil, &ValidationError{Message: msgDateNotSelected}
	case timeSlot == "":
		s.notifier.Notify(msgTimeNotSelected)
		return nil, &ValidationError{Message: msgTimeNotSelected}
	}

	appt, err := s.client.CreateAppointment(ctx, apiclient.CreateAppointmentRequest{
		MasterID:  masterID,
		ServiceID: serviceID,
		Date:      date,
		Time:      timeSlot,
		Comment:   comment,
	})
	if err != nil {
		s.logger.Error("Submit: master_id=%d, service_id=%d, date=%s, time=%s: %v",
			masterID, serviceID, date, timeSlot, err)
		s.notifier.Notify(msgSubmitFailed)
		return nil, err
	}

	s.logger.Info("Submit: appointment created, id=%d", appt.ID)
	s.notifier.Notify(msgSubmitOK)

	// Выбор времени отработал, слоты на эту дату устарели
	s.mu.Lock()
	s.selectedTime = ""
	s.mu.Unlock()

	if err := s.LoadAppointments(ctx); err != nil {
		s.logger.Warn("Submit: reload appointments: %v", err)
	}
	return appt, nil
}
