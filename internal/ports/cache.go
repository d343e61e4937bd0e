package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// IConversionCache — контракт кэша результатов конвертации.
// Ключ — читаемая строка конверсии, значение — результат. Дубликаты перезаписываются.
type IConversionCache interface {
	Get(ctx context.Context, key string) (value float64, found bool, err error)
	Set(ctx context.Context, key string, value float64) error
}
