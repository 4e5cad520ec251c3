package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtInactive возвращается, когда корт отключен от бронирования
	ErrCourtInactive = errors.New("create_booking: court is not active")

	// ErrInvalidInput возвращается при некорректных входных данных (ошибки формы/полей)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError накапливает ВСЕ ошибки доменной валидации бронирования
// (порядок времени, длительность, вместимость, пересечения слотов)
// Проверки не прерываются на первой ошибке - пользователь видит полный список
type ValidationError struct {
	Messages []string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return "create_booking: validation failed: " + strings.Join(e.Messages, "; ")
}
