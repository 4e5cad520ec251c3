package advertisement

import "errors"

var (
	// ErrAdvertisementNotFound возвращается, когда заявка не найдена
	ErrAdvertisementNotFound = errors.New("advertisement.repository: advertisement not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("advertisement.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("advertisement.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("advertisement.repository: failed to scan row")
)
