package calc

import (
	"math"
	"strconv"
	"strings"

	"unitcalc/internal/domain"
)

// ActionKind — тип действия пользователя.
type ActionKind string

// Поддерживаемые действия.
const (
	ActionDigit      ActionKind = "digit"
	ActionDecimal    ActionKind = "decimal"
	ActionClear      ActionKind = "clear"
	ActionClearEntry ActionKind = "clear_entry"
	ActionBackspace  ActionKind = "backspace"
	ActionToggleSign ActionKind = "toggle_sign"
	ActionPercent    ActionKind = "percent"
	ActionOperation  ActionKind = "operation"
	ActionEvaluate   ActionKind = "evaluate"
)

// Action — одно дискретное действие. Digit заполняется для ActionDigit ("0".."9"),
// Operation — для ActionOperation (+, -, *, /).
type Action struct {
	Kind      ActionKind
	Digit     string
	Operation string
}

// Commit — побочный эффект успешного "=": готовая запись для истории.
// При результате "Error" коммит не эмитится.
type Commit struct {
	Expression string
	Result     string
}

// Apply — чистый редьюсер: применяет действие к состоянию и возвращает новое
// состояние и, только для успешного вычисления, запись для истории.
// Неизвестный вид действия оставляет состояние без изменений.
func Apply(s State, a Action) (State, *Commit) {
	switch a.Kind {
	case ActionDigit:
		return inputDigit(s, a.Digit), nil
	case ActionDecimal:
		return inputDecimal(s), nil
	case ActionClear:
		return NewState(), nil
	case ActionClearEntry:
		return clearEntry(s), nil
	case ActionBackspace:
		return backspace(s), nil
	case ActionToggleSign:
		return toggleSign(s), nil
	case ActionPercent:
		return inputPercent(s), nil
	case ActionOperation:
		return performOperation(s, a.Operation), nil
	case ActionEvaluate:
		return evaluate(s)
	}
	return s, nil
}

// inputDigit: после оператора цифра начинает новый операнд,
// одиночный "0" замещается, иначе цифра дописывается справа.
func inputDigit(s State, d string) State {
	switch {
	case s.WaitingForOperand:
		s.Display = d
		s.WaitingForOperand = false
	case s.Display == "0":
		s.Display = d
	default:
		s.Display += d
	}
	return s
}

// inputDecimal: после оператора начинает "0.", иначе добавляет точку,
// только если её ещё нет.
func inputDecimal(s State) State {
	if s.WaitingForOperand {
		s.Display = "0."
		s.WaitingForOperand = false
		return s
	}
	if !strings.Contains(s.Display, ".") {
		s.Display += "."
	}
	return s
}

// clearEntry сбрасывает только текущий операнд; накопленное значение и
// отложенная операция сохраняются — так можно поправить ввод посреди цепочки.
func clearEntry(s State) State {
	s.Display = "0"
	return s
}

// backspace убирает последний символ; пустой остаток или одинокий "-"
// заменяются на "0".
func backspace(s State) State {
	d := s.Display
	if len(d) > 0 {
		d = d[:len(d)-1]
	}
	if d == "" || d == "-" {
		d = "0"
	}
	s.Display = d
	return s
}

func toggleSign(s State) State {
	if s.Display == "0" {
		return s
	}
	if strings.HasPrefix(s.Display, "-") {
		s.Display = strings.TrimPrefix(s.Display, "-")
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

// inputPercent безусловно заменяет операнд на operand/100.
// Это буквальная семантика «значение делить на сто», а не «процент от
// накопленного значения» — отложенная операция не участвует.
func inputPercent(s State) State {
	s.Display = formatNumber(parseOperand(s.Display) / 100)
	return s
}

// performOperation: первый оператор запоминает операнд; повторный оператор
// сворачивает цепочку немедленно (аккумулятор слева направо, без приоритетов)
// и кладёт результат и в Display, и в PreviousValue.
func performOperation(s State, op string) State {
	if s.PreviousValue == "" {
		s.PreviousValue = s.Display
	} else if s.PendingOperation != "" {
		text := formatNumber(compute(parseOperand(s.PreviousValue), parseOperand(s.Display), s.PendingOperation))
		s.Display = text
		s.PreviousValue = text
	}
	s.WaitingForOperand = true
	s.PendingOperation = op
	return s
}

// evaluate: без отложенной операции или накопленного значения — no-op.
// Деление на ноль даёт нечисловой сентинел и экран "Error"; коммит в историю
// в этом случае не эмитится.
func evaluate(s State) (State, *Commit) {
	if s.PendingOperation == "" || s.PreviousValue == "" {
		return s, nil
	}
	result := compute(parseOperand(s.PreviousValue), parseOperand(s.Display), s.PendingOperation)
	expression := s.PreviousValue + " " + s.PendingOperation + " " + s.Display
	text := formatNumber(result)

	s.Display = text
	s.PreviousValue = ""
	s.PendingOperation = ""
	s.WaitingForOperand = true

	if text == "Error" {
		return s, nil
	}
	return s, &Commit{Expression: expression, Result: text}
}

func compute(a, b float64, op string) float64 {
	switch op {
	case domain.OpAdd:
		return a + b
	case domain.OpSub:
		return a - b
	case domain.OpMul:
		return a * b
	case domain.OpDiv:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	}
	return math.NaN()
}

// parseOperand разбирает текст операнда; нечисловой текст (включая "Error") — NaN.
func parseOperand(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// formatNumber — стандартное преобразование float64 в строку для экрана
// калькулятора. Путь форматирования у калькулятора свой и с форматтером
// конвертера (units.FormatResult) не объединяется.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Error"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
