package master

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master.repository: master not found")

	// ErrScheduleNotFound возвращается, когда у мастера нет расписания на день
	ErrScheduleNotFound = errors.New("master.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("master.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("master.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("master.repository: failed to scan row")
)
