// Package pricing вычисляет стоимость бронирования: базовый тариф поля
// за вычетом лучшей из действующих промоакций.
//
// Чистая функция над переданными данными, как и детектор пересечений.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// Quote результат расчета цены
type Quote struct {
	TotalPrice         decimal.Decimal
	AppliedPromotionID *int64
}

// Resolve вычисляет цену интервала для поля.
//
// Алгоритм:
//  1. raw = basePricePerHour * длительность в часах
//  2. из promotions отбираются активные, чье окно действия пересекает интервал
//  3. для каждого кандидата считается итоговая цена:
//     percentage   -> raw * (1 - value/100)
//     fixed_amount -> max(0, raw - value)
//  4. выбирается кандидат с минимальной ценой; при равенстве — самая свежая
//     промоакция (по created_at). Применяется не больше одной промоакции.
//
// Округление до 2 знаков выполняется один раз над итогом, а не на
// промежуточных шагах, чтобы не накапливать ошибку округления.
func Resolve(field *domain.Field, interval domain.Interval, promotions []*domain.Promotion) Quote {
	raw := field.BasePricePerHour.Mul(interval.Hours())

	var (
		bestPromo *domain.Promotion
		bestPrice decimal.Decimal
	)

	for _, promo := range promotions {
		if !promo.AppliesTo(interval) {
			continue
		}

		price := discountedPrice(raw, promo)

		switch {
		case bestPromo == nil:
			bestPromo, bestPrice = promo, price
		case price.LessThan(bestPrice):
			bestPromo, bestPrice = promo, price
		case price.Equal(bestPrice) && promo.CreatedAt.After(bestPromo.CreatedAt):
			bestPromo = promo
		}
	}

	total := raw
	if bestPromo != nil {
		total = bestPrice
	}

	quote := Quote{TotalPrice: total.Round(domain.MoneyScale)}
	if bestPromo != nil {
		id := bestPromo.ID
		quote.AppliedPromotionID = &id
	}
	return quote
}

// discountedPrice применяет промоакцию к сырой цене
func discountedPrice(raw decimal.Decimal, promo *domain.Promotion) decimal.Decimal {
	switch promo.DiscountType {
	case domain.DiscountPercentage:
		return raw.Mul(one.Sub(promo.DiscountValue.Div(oneHundred)))
	case domain.DiscountFixedAmount:
		price := raw.Sub(promo.DiscountValue)
		if price.IsNegative() {
			return decimal.Zero
		}
		return price
	default:
		return raw
	}
}
