package get_available_slots

import (
	"fmt"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// generateTimeSlots генерирует все возможные времена начала на день.
// Слоты идут с фиксированным шагом от начала до конца рабочего дня,
// последний слот должен целиком помещаться до закрытия.
// Счёт идёт в минутах, поэтому конец дня вплотную к полуночи
// просто обрезает неполный последний слот
func generateTimeSlots(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	for current := startMinutes; current+stepMinutes <= endMinutes; current += stepMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", current/60, current%60)))
	}

	return slots, nil
}

// filterBookedSlots убирает занятые времена из списка слотов
func filterBookedSlots(slots []types.TimeString, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available
}

// dayOfWeekMondayFirst переводит time.Weekday (воскресенье=0) в
// нумерацию расписания мастеров (понедельник=0 ... воскресенье=6)
func dayOfWeekMondayFirst(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// workingHoursFor возвращает рабочие часы на день: расписание мастера,
// а при его отсутствии дефолтный рабочий день
func workingHoursFor(entry *domain.ScheduleEntry) (start, end types.TimeString, active bool) {
	if entry == nil {
		return types.TimeString(domain.DefaultWorkdayStart), types.TimeString(domain.DefaultWorkdayEnd), true
	}
	return entry.StartTime, entry.EndTime, entry.IsActive
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
