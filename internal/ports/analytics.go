package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"unitcalc/internal/domain"
)

// ICalculationAnalytics — запись вычислений в аналитическое хранилище (например, ClickHouse).
type ICalculationAnalytics interface {
	WriteCalculation(ctx context.Context, c domain.Calculation) error
}
