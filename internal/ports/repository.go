package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"unitcalc/internal/domain"
)

// IHistoryRepository — контракт хранилища истории вычислений.
// Список возвращается по времени создания, новые записи первыми.
type IHistoryRepository interface {
	SaveCalculation(ctx context.Context, c domain.Calculation) error
	ListCalculations(ctx context.Context) ([]domain.Calculation, error)
	RemoveCalculation(ctx context.Context, id int) error
	ClearCalculations(ctx context.Context) error
	Ping(ctx context.Context) error
}
