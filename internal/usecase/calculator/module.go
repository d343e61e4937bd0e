package calculator

import (
	"log/slog"

	"unitcalc/internal/ports"
)

// UseCase — бизнес-логика калькулятора: чистый автомат плюс фиксация
// завершённых вычислений в истории и в брокере.
type UseCase struct {
	repo      ports.IHistoryRepository
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс калькулятора.
func New(repo ports.IHistoryRepository, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, broker: broker, analytics: analytics, log: log}
}
