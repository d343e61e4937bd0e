package calculator

import (
	"context"
	"encoding/json"
	"time"

	"unitcalc/internal/calc"
	"unitcalc/internal/domain"
)

// Apply применяет одно действие к состоянию. Если автомат завершил вычисление,
// запись сохраняется в историю и публикуется в брокер. Фиксация — best effort:
// состояние уже переключилось, ошибки записи логируются и не откатывают его.
func (u *UseCase) Apply(ctx context.Context, state calc.State, action calc.Action) (calc.State, *domain.Calculation) {
	next, commit := calc.Apply(state, action)
	if commit == nil {
		return next, nil
	}

	c := domain.Calculation{
		Expression: commit.Expression,
		Result:     commit.Result,
		CreatedAt:  time.Now(),
	}

	if err := u.repo.SaveCalculation(ctx, c); err != nil {
		u.log.Warn("history save", "expression", c.Expression, "error", err)
	} else {
		u.log.Info("calculation saved", "expression", c.Expression, "result", c.Result)
	}

	value, err := json.Marshal(c)
	if err != nil {
		u.log.Warn("calculation marshal", "expression", c.Expression, "error", err)
		return next, &c
	}
	if err := u.broker.Send(ctx, []byte(c.Expression), value); err != nil {
		u.log.Warn("broker send", "expression", c.Expression, "error", err)
	} else {
		u.log.Info("calculation published", "expression", c.Expression, "result", c.Result)
	}

	return next, &c
}

// History — история вычислений (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.Calculation, error) {
	return u.repo.ListCalculations(ctx)
}

// RemoveCalculation удаляет одну запись истории.
func (u *UseCase) RemoveCalculation(ctx context.Context, id int) error {
	return u.repo.RemoveCalculation(ctx, id)
}

// ClearHistory удаляет все записи истории.
func (u *UseCase) ClearHistory(ctx context.Context) error {
	return u.repo.ClearCalculations(ctx)
}

// HandleCalculationEvent вызывается консьюмером при получении сообщения из топика
// (часть ICalculatorUseCase): пишет вычисление в аналитическое хранилище.
func (u *UseCase) HandleCalculationEvent(ctx context.Context, c domain.Calculation) error {
	if err := u.analytics.WriteCalculation(ctx, c); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "expression", c.Expression, "result", c.Result)

	return nil
}
