package advertisements

import (
	"errors"
	"strings"
)

var (
	// ErrAdvertisementNotFound возвращается, когда заявка не найдена
	ErrAdvertisementNotFound = errors.New("advertisement not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid advertisement status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса модерации
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибка валидации заявки с накопленным списком сообщений
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
