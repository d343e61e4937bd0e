package converter

import (
	"context"
	"fmt"
	"math"

	"unitcalc/internal/domain"
	"unitcalc/internal/units"
)

// Convert — проверяет кэш; при промахе считает через каталог и кладёт результат
// в кэш. Неизвестная категория — ошибка; неизвестная единица — не ошибка,
// а NaN-сентинел с Formatted == "Error" (так её и показывают).
func (u *UseCase) Convert(ctx context.Context, value float64, fromKey, toKey, category string) (*domain.Conversion, error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, category)
	}

	conv := &domain.Conversion{
		Category: cat,
		FromUnit: fromKey,
		ToUnit:   toKey,
		Value:    value,
	}

	key := cacheKey(value, fromKey, toKey, cat)
	if cached, found, err := u.cache.Get(ctx, key); err == nil && found {
		conv.Result = cached
		conv.Formatted = units.FormatResult(cached)
		return conv, nil
	}

	conv.Result = units.Convert(value, fromKey, toKey, cat)
	conv.Formatted = units.FormatResult(conv.Result)

	// NaN (неизвестная единица) не кэшируем: в Redis он всё равно не разберётся обратно.
	if !math.IsNaN(conv.Result) {
		if err := u.cache.Set(ctx, key, conv.Result); err != nil {
			u.log.Warn("conversion cache set", "key", key, "error", err)
		}
	}

	return conv, nil
}

// Categories возвращает весь каталог единиц для справочных экранов.
func (u *UseCase) Categories() []domain.CategoryDefinition {
	return units.Categories()
}
