package calculator

import (
	"fmt"
	"time"

	"unitcalc/internal/calc"
	"unitcalc/internal/domain"
)

// StateDTO — состояние калькулятора на проводе. Пустой display означает
// «начать новую сессию» и разворачивается в calc.NewState().
type StateDTO struct {
	Display           string `json:"display"`
	PreviousValue     string `json:"previousValue,omitempty"`
	PendingOperation  string `json:"pendingOperation,omitempty"`
	WaitingForOperand bool   `json:"waitingForOperand"`
}

// ActionDTO — одно действие пользователя.
type ActionDTO struct {
	Kind      string `json:"kind" binding:"required"`
	Digit     string `json:"digit,omitempty"`
	Operation string `json:"operation,omitempty"`
}

// ApplyRequest — запрос на применение действия (POST /api/v1/calculator/apply).
type ApplyRequest struct {
	State  StateDTO  `json:"state"`
	Action ActionDTO `json:"action" binding:"required"`
}

// CalculationDTO — одна запись в истории.
type CalculationDTO struct {
	ID         int       `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ApplyResponse — новое состояние и, для завершённого вычисления, запись истории.
type ApplyResponse struct {
	State       StateDTO        `json:"state"`
	Calculation *CalculationDTO `json:"calculation,omitempty"`
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []CalculationDTO `json:"items"`
}

// ErrorResponse — ответ с текстом ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Validate проверяет, что действие полно: у digit есть цифра, у operation — операция.
func (a ActionDTO) Validate() error {
	switch calc.ActionKind(a.Kind) {
	case calc.ActionDigit:
		if len(a.Digit) != 1 || a.Digit[0] < '0' || a.Digit[0] > '9' {
			return fmt.Errorf("digit action needs a single digit, got %q", a.Digit)
		}
	case calc.ActionOperation:
		switch a.Operation {
		case domain.OpAdd, domain.OpSub, domain.OpMul, domain.OpDiv:
		default:
			return fmt.Errorf("%w: %q", domain.ErrUnknownOperation, a.Operation)
		}
	case calc.ActionDecimal, calc.ActionClear, calc.ActionClearEntry,
		calc.ActionBackspace, calc.ActionToggleSign, calc.ActionPercent, calc.ActionEvaluate:
	default:
		return fmt.Errorf("unknown action kind: %q", a.Kind)
	}
	return nil
}

func (a ActionDTO) toAction() calc.Action {
	return calc.Action{
		Kind:      calc.ActionKind(a.Kind),
		Digit:     a.Digit,
		Operation: a.Operation,
	}
}

func (d StateDTO) toState() calc.State {
	if d.Display == "" {
		return calc.NewState()
	}
	return calc.State{
		Display:           d.Display,
		PreviousValue:     d.PreviousValue,
		PendingOperation:  d.PendingOperation,
		WaitingForOperand: d.WaitingForOperand,
	}
}

func fromState(s calc.State) StateDTO {
	return StateDTO{
		Display:           s.Display,
		PreviousValue:     s.PreviousValue,
		PendingOperation:  s.PendingOperation,
		WaitingForOperand: s.WaitingForOperand,
	}
}

func fromCalculation(c *domain.Calculation) *CalculationDTO {
	if c == nil {
		return nil
	}
	return &CalculationDTO{
		ID:         c.ID,
		Expression: c.Expression,
		Result:     c.Result,
		CreatedAt:  c.CreatedAt,
	}
}
