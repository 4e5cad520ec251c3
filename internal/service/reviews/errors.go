package reviews

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrDuplicateReview возвращается, когда пользователь уже оставил отзыв площадке
	ErrDuplicateReview = errors.New("user already reviewed this venue")

	// ErrInvalidRating возвращается, когда рейтинг вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
