package flow

import (
	"context"
	"strings"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

const (
	msgAuthRequiredForFavorite = "войдите, чтобы добавлять мастеров в избранное"
	msgFavoriteToggleFailed    = "не удалось изменить избранное"
)

// Search фильтрует загруженных мастеров по подстроке без учёта регистра.
// Ищет по имени, специализации и адресу; отсутствующий адрес не матчится.
// Фильтр избранного применяется поверх поиска
func (s *Session) Search(term string) []apiclient.Master {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))

	result := make([]apiclient.Master, 0, len(s.masters))
	for _, m := range s.masters {
		if s.favoritesFilter && !m.IsFavorite {
			continue
		}
		if term != "" && !masterMatches(m, term) {
			continue
		}
		result = append(result, m)
	}
	return result
}

// SetFavoritesFilter включает и выключает фильтр избранного
func (s *Session) SetFavoritesFilter(enabled bool) {
	s.mu.Lock()
	s.favoritesFilter = enabled
	s.mu.Unlock()
}

// SelectMaster выбирает мастера для бронирования.
// Если дата уже выбрана, слоты перезагружаются
func (s *Session) SelectMaster(ctx context.Context, masterID int64) {
	s.mu.Lock()
	s.selectedMasterID = masterID
	s.selectedTime = ""
	hasDate := s.selectedDate != ""
	s.mu.Unlock()

	s.logger.Info("SelectMaster: master_id=%d", masterID)

	if hasDate {
		s.LoadSlots(ctx)
	}
}

// ToggleFavorite оптимистично переключает избранное: локальный флаг
// меняется до ответа сервера, расхождение исправит следующая перезагрузка
// списка. Без авторизации состояние не трогается
func (s *Session) ToggleFavorite(ctx context.Context, masterID int64) error {
	if !s.client.HasToken() {
		s.logger.Warn("ToggleFavorite: unauthenticated attempt, master_id=%d", masterID)
		s.notifier.Notify(msgAuthRequiredForFavorite)
		return ErrAuthRequired
	}

	s.mu.Lock()
	var wasFavorite bool
	found := false
	for i := range s.masters {
		if s.masters[i].ID == masterID {
			wasFavorite = s.masters[i].IsFavorite
			s.masters[i].IsFavorite = !wasFavorite
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		s.logger.Warn("ToggleFavorite: unknown master_id=%d", masterID)
		return nil
	}

	var err error
	if wasFavorite {
		err = s.client.RemoveFavorite(ctx, masterID)
	} else {
		err = s.client.AddFavorite(ctx, masterID)
	}
	if err != nil {
		s.logger.Error("ToggleFavorite: master_id=%d: %v", masterID, err)
		s.notifier.Notify(msgFavoriteToggleFailed)
		return err
	}

	s.logger.Info("ToggleFavorite: master_id=%d, is_favorite=%t", masterID, !wasFavorite)
	return nil
}

func masterMatches(m apiclient.Master, term string) bool {
	if strings.Contains(strings.ToLower(m.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Specialization), term) {
		return true
	}
	if m.Address != nil && strings.Contains(strings.ToLower(*m.Address), term) {
		return true
	}
	return false
}
