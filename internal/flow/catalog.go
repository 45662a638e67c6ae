package flow

import (
	"context"
	"fmt"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

const (
	msgCategoriesLoadFailed = "не удалось загрузить категории"
	msgServicesLoadFailed   = "не удалось загрузить услуги"
	msgCarsLoadFailed       = "не удалось загрузить автомобили"
	msgMastersLoadFailed    = "не удалось загрузить мастеров"
)

// LoadCategories загружает категории. Дубликаты по имени схлопываются,
// при ошибке список очищается и категорию выбрать нельзя
func (s *Session) LoadCategories(ctx context.Context) error {
	categories, err := s.client.Categories(ctx)
	if err != nil {
		s.logger.Error("LoadCategories: %v", err)
		s.mu.Lock()
		s.categories = nil
		s.mu.Unlock()
		s.notifier.Notify(msgCategoriesLoadFailed)
		return err
	}

	deduped := dedup(categories, func(c apiclient.Category) string {
		return c.Name
	}, s.logger, "categories")

	s.mu.Lock()
	s.categories = deduped
	s.mu.Unlock()

	s.logger.Info("LoadCategories: %d categories loaded", len(deduped))
	return nil
}

// LoadServices загружает услуги категории, categoryID == 0 означает все
func (s *Session) LoadServices(ctx context.Context, categoryID int64) error {
	services, err := s.client.Services(ctx, categoryID)
	if err != nil {
		s.logger.Error("LoadServices: %v", err)
		s.mu.Lock()
		s.services = nil
		s.mu.Unlock()
		s.notifier.Notify(msgServicesLoadFailed)
		return err
	}

	deduped := dedup(services, func(sv apiclient.Service) string {
		return sv.Name
	}, s.logger, "services")

	s.mu.Lock()
	s.services = deduped
	s.mu.Unlock()

	s.logger.Info("LoadServices: %d services loaded, category_id=%d", len(deduped), categoryID)
	return nil
}

// LoadCars загружает справочник автомобилей
func (s *Session) LoadCars(ctx context.Context) error {
	cars, err := s.client.Cars(ctx)
	if err != nil {
		s.logger.Error("LoadCars: %v", err)
		s.mu.Lock()
		s.cars = nil
		s.mu.Unlock()
		s.notifier.Notify(msgCarsLoadFailed)
		return err
	}

	deduped := dedup(cars, func(c apiclient.Car) string {
		return fmt.Sprintf("%s|%s|%d", c.Brand, c.Model, c.Year)
	}, s.logger, "cars")

	s.mu.Lock()
	s.cars = deduped
	s.mu.Unlock()

	s.logger.Info("LoadCars: %d cars loaded", len(deduped))
	return nil
}

// LoadMasters загружает мастеров. Список заменяется целиком, не патчится
func (s *Session) LoadMasters(ctx context.Context) error {
	masters, err := s.client.Masters(ctx)
	if err != nil {
		s.logger.Error("LoadMasters: %v", err)
		s.mu.Lock()
		s.masters = nil
		s.mu.Unlock()
		s.notifier.Notify(msgMastersLoadFailed)
		return err
	}

	deduped := dedup(masters, func(m apiclient.Master) string {
		return m.Name + "|" + m.Email
	}, s.logger, "masters")

	s.mu.Lock()
	s.masters = deduped
	s.mu.Unlock()

	s.logger.Info("LoadMasters: %d masters loaded", len(deduped))
	return nil
}

// dedup схлопывает дубликаты по ключу, сохраняя порядок первых вхождений.
// Дубликаты логируются, но не считаются ошибкой
func dedup[T any](items []T, key func(T) string, logger Logger, what string) []T {
	seen := make(map[string]bool, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if seen[k] {
			logger.Warn("dedup: duplicate %s entry dropped, key=%q", what, k)
			continue
		}
		seen[k] = true
		result = append(result, item)
	}

	return result
}
