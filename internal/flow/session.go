package flow

import (
	"sync"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

// SlotState состояние загрузки слотов для текущего выбора
type SlotState int

const (
	// SlotStateIdle слоты не запрашивались: мастер или дата не выбраны
	SlotStateIdle SlotState = iota
	// SlotStateLoading запрос в полёте, выбор времени заблокирован
	SlotStateLoading
	// SlotStateLoaded слоты получены и непусты
	SlotStateLoaded
	// SlotStateEmpty слоты получены, но на эту дату всё занято. Не ошибка
	SlotStateEmpty
	// SlotStateError запрос завершился ошибкой
	SlotStateError
)

// Session хранит всё эфемерное состояние флоу бронирования.
// Заменяет странично-глобальные переменные оригинального клиента:
// одна сессия - один пользовательский сценарий
type Session struct {
	client    APIClient
	notifier  Notifier
	confirmer Confirmer
	logger    Logger

	mu sync.Mutex

	// Справочники
	categories []apiclient.Category
	services   []apiclient.Service
	cars       []apiclient.Car

	// Мастера: список заменяется целиком при каждой перезагрузке
	masters         []apiclient.Master
	favoritesFilter bool

	// Текущий выбор бронирования
	selectedMasterID  int64
	selectedServiceID int64
	selectedCarID     int64
	selectedDate      string
	selectedTime      string

	// Слоты: generation защищает от гонки устаревших ответов
	slotState      SlotState
	slots          []string
	slotGeneration uint64

	// Записи пользователя, как их видел клиент в этой сессии
	appointments []apiclient.Appointment
}

// NewSession создает новую сессию флоу бронирования
func NewSession(client APIClient, notifier Notifier, confirmer Confirmer, logger Logger) *Session {
	return &Session{
		client:    client,
		notifier:  notifier,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Categories возвращает загруженные категории
func (s *Session) Categories() []apiclient.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]apiclient.Category(nil), s.categories...)
}

// Services возвращает загруженные услуги
func (s *Session) Services() []apiclient.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]apiclient.Service(nil), s.services...)
}

// Cars возвращает загруженные автомобили
func (s *Session) Cars() []apiclient.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]apiclient.Car(nil), s.cars...)
}

// SelectedMasterID возвращает выбранного мастера, 0 если не выбран
func (s *Session) SelectedMasterID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedMasterID
}

// SelectService выбирает услугу для бронирования
func (s *Session) SelectService(serviceID int64) {
	s.mu.Lock()
	s.selectedServiceID = serviceID
	s.mu.Unlock()
}

// SelectCar выбирает автомобиль для расчёта стоимости
func (s *Session) SelectCar(carID int64) {
	s.mu.Lock()
	s.selectedCarID = carID
	s.mu.Unlock()
}

// SelectTime выбирает время из загруженных слотов
func (s *Session) SelectTime(t string) {
	s.mu.Lock()
	s.selectedTime = t
	s.mu.Unlock()
}

// Slots возвращает текущее состояние и список слотов
func (s *Session) Slots() (SlotState, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slotState, append([]string(nil), s.slots...)
}

// Appointments возвращает записи, загруженные в этой сессии
func (s *Session) Appointments() []apiclient.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]apiclient.Appointment(nil), s.appointments...)
}
