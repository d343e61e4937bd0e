package domain

import (
	"errors"
	"time"
)

// ErrUnknownOperation возвращается, когда операция не поддерживается.
var ErrUnknownOperation = errors.New("unknown operation")

// Константы арифметических операций.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
)

// Calculation — запись об одном завершённом вычислении.
// Результат хранится строкой: на экране он уже строка, в том числе "Error".
type Calculation struct {
	ID         int
	Expression string
	Result     string
	CreatedAt  time.Time
}
