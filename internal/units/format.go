package units

import (
	"math"
	"strconv"
)

// Границы «обычного» диапазона: внутри него результат показываем как простое
// десятичное число, за его пределами — в научной нотации.
const (
	plainMin = 1e-6
	plainMax = 1e12
)

// FormatResult превращает сырой float64 в каноничную строку результата конвертера.
// Правила применяются по порядку:
//  1. NaN и ±Inf — "Error";
//  2. ровно ноль — "0";
//  3. 1e-6 <= |v| < 1e12 — округление до 10 значащих цифр и минимальная
//     десятичная запись без лишних хвостовых нулей;
//  4. иначе — научная нотация ровно с 6 знаками после точки, например "1.500000e+12".
func FormatResult(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Error"
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= plainMin && abs < plainMax {
		// 'e' с 9 знаками после точки — это 10 значащих цифр; разбор обратно
		// даёт округлённое значение, 'f' с точностью -1 — минимальную запись.
		rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'e', 9, 64), 64)
		return strconv.FormatFloat(rounded, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'e', 6, 64)
}
