// Package calc — конечный автомат настольного калькулятора.
// Автомат чистый: Apply не имеет побочных эффектов, запись в историю
// возвращается отдельным значением и выполняется вызывающим.
package calc

// State — состояние калькулятора между действиями пользователя.
// Display всегда непустой: либо частичная/полная десятичная запись числа,
// либо литерал "Error". Пустой PreviousValue означает «накопленного значения нет»
// (сам операнд пустым не бывает), пустой PendingOperation — «операция не выбрана».
type State struct {
	Display           string
	PreviousValue     string
	PendingOperation  string
	WaitingForOperand bool
}

// NewState возвращает начальное состояние сессии: на экране "0".
func NewState() State {
	return State{Display: "0"}
}
