package converter

import (
	"log/slog"
	"strconv"

	"unitcalc/internal/domain"
	"unitcalc/internal/ports"
)

// cacheKey формирует читаемый ключ конверсии для кэша, например "length 100 ft -> m".
func cacheKey(value float64, fromKey, toKey string, category domain.Category) string {
	return string(category) + " " + strconv.FormatFloat(value, 'f', -1, 64) + " " + fromKey + " -> " + toKey
}

// UseCase — бизнес-логика конвертера единиц.
type UseCase struct {
	cache ports.IConversionCache
	log   *slog.Logger
}

// New создаёт юзкейс конвертера.
func New(cache ports.IConversionCache, log *slog.Logger) *UseCase {
	return &UseCase{cache: cache, log: log}
}
