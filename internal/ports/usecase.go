package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"unitcalc/internal/calc"
	"unitcalc/internal/domain"
)

// ICalculatorUseCase — бизнес-логика калькулятора: применение действий,
// история, обработка событий из брокера.
// Apply возвращает запись истории, когда действие завершило вычисление;
// фиксация записи — best effort, состояние к этому моменту уже переключилось.
type ICalculatorUseCase interface {
	Apply(ctx context.Context, state calc.State, action calc.Action) (calc.State, *domain.Calculation)
	History(ctx context.Context) ([]domain.Calculation, error)
	RemoveCalculation(ctx context.Context, id int) error
	ClearHistory(ctx context.Context) error
	HandleCalculationEvent(ctx context.Context, c domain.Calculation) error
}

// IConverterUseCase — бизнес-логика конвертера единиц.
type IConverterUseCase interface {
	Convert(ctx context.Context, value float64, fromKey, toKey, category string) (*domain.Conversion, error)
	Categories() []domain.CategoryDefinition
}
