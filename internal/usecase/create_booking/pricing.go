package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

// CalculatePrice вычисляет стоимость бронирования: часовая ставка * длительность в часах
// Дробные часы сохраняются, результат округляется до двух знаков (валютная точность)
//
// Чистая функция без побочных эффектов: повторный вызов с теми же аргументами
// дает тот же результат. Вызывается валидатором перед сохранением бронирования
func CalculatePrice(rate decimal.Decimal, start, end types.TimeString) (decimal.Decimal, error) {
	minutes, err := start.MinutesUntil(end)
	if err != nil {
		return decimal.Zero, err
	}

	// price = rate * (minutes / 60)
	return rate.
		Mul(decimal.NewFromInt(int64(minutes))).
		Div(decimal.NewFromInt(60)).
		Round(2), nil
}
