package units

import (
	"math"
	"strconv"
	"strings"

	"unitcalc/internal/domain"
)

// Convert переводит значение между двумя единицами одной категории через базовую:
// value * from.ToBase / to.ToBase.
// Неизвестная единица даёт NaN-сентинел, а не ошибку: вызывающий обязан
// проверить результат перед показом (FormatResult отрисует его как "Error").
func Convert(value float64, fromKey, toKey string, category domain.Category) float64 {
	from, ok := FindUnit(category, fromKey)
	if !ok {
		return math.NaN()
	}
	to, ok := FindUnit(category, toKey)
	if !ok {
		return math.NaN()
	}
	// Одинаковый фактор — значение возвращается как есть: умножение и деление
	// на один и тот же фактор округляется дважды и ломает тождество v -> v
	// (42.5 кв. ярдов через базу дают 42.49999999999999).
	if from.ToBase == to.ToBase {
		return value
	}
	return value * from.ToBase / to.ToBase
}

// SanitizeOperand фильтрует сырой текст операнда: остаются цифры,
// не более одного ведущего минуса и не более одной десятичной точки.
func SanitizeOperand(text string) string {
	var b strings.Builder
	seenDot := false
	for i, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseOperand разбирает очищенный текст операнда.
// Переходные состояния ввода ("", "-", ".") дают NaN-сентинел.
func ParseOperand(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
