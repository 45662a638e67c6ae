package flow

import "context"

const msgSlotsLoadFailed = "не удалось загрузить свободное время"

// SetDate выбирает дату бронирования.
// Если мастер уже выбран, слоты перезагружаются
func (s *Session) SetDate(ctx context.Context, date string) {
	s.mu.Lock()
	s.selectedDate = date
	s.selectedTime = ""
	hasMaster := s.selectedMasterID != 0
	s.mu.Unlock()

	if hasMaster {
		s.LoadSlots(ctx)
	}
}

// LoadSlots загружает свободные слоты для текущего выбора мастера и даты.
// Каждый запрос получает свой номер поколения: ответ, пришедший после
// более нового запроса, молча выбрасывается - состояние отражает
// последний сделанный выбор, а не последний пришедший ответ
func (s *Session) LoadSlots(ctx context.Context) {
	s.mu.Lock()
	masterID := s.selectedMasterID
	date := s.selectedDate
	if masterID == 0 || date == "" {
		s.slotState = SlotStateIdle
		s.slots = nil
		s.mu.Unlock()
		return
	}

	s.slotGeneration++
	generation := s.slotGeneration
	s.slotState = SlotStateLoading
	s.slots = nil
	s.mu.Unlock()

	result, err := s.client.AvailableSlots(ctx, masterID, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.slotGeneration {
		s.logger.Info("LoadSlots: stale response discarded, master_id=%d, date=%s", masterID, date)
		return
	}

	if err != nil {
		s.logger.Error("LoadSlots: master_id=%d, date=%s: %v", masterID, date, err)
		s.slotState = SlotStateError
		s.slots = nil
		s.notifier.Notify(msgSlotsLoadFailed)
		return
	}

	if len(result.Slots) == 0 {
		// Пустой день - не ошибка
		s.slotState = SlotStateEmpty
		s.slots = nil
		s.logger.Info("LoadSlots: no slots, master_id=%d, date=%s", masterID, date)
		return
	}

	s.slotState = SlotStateLoaded
	s.slots = result.Slots
	s.logger.Info("LoadSlots: %d slots, master_id=%d, date=%s", len(result.Slots), masterID, date)
}
