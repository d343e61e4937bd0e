package domain

import "errors"

// Ошибки подсистемы единиц измерения.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
)

// System — система мер единицы.
type System string

// Поддерживаемые системы мер.
const (
	SystemSI       System = "SI"
	SystemImperial System = "Imperial"
)

// Category — категория единиц измерения. Закрытое множество.
type Category string

// Поддерживаемые категории.
const (
	CategoryLength Category = "length"
	CategoryArea   Category = "area"
	CategoryVolume Category = "volume"
	CategoryAngle  Category = "angle"
)

// ParseCategory разбирает ключ категории. Ключ вне закрытого множества — ErrUnknownCategory.
func ParseCategory(key string) (Category, error) {
	switch c := Category(key); c {
	case CategoryLength, CategoryArea, CategoryVolume, CategoryAngle:
		return c, nil
	}
	return "", ErrUnknownCategory
}

// UnitDefinition — единица измерения внутри категории.
// ToBase — значение одной такой единицы, выраженное в базовой единице категории.
// У базовой единицы ToBase == 1.
type UnitDefinition struct {
	Key          string
	Name         string
	Abbreviation string
	System       System
	ToBase       float64
}

// CategoryDefinition — категория с упорядоченным списком единиц.
// DefaultFromUnit и DefaultToUnit ссылаются на ключи из Units.
type CategoryDefinition struct {
	Key             Category
	Name            string
	BaseName        string
	DefaultFromUnit string
	DefaultToUnit   string
	Units           []UnitDefinition
}

// Conversion — результат перевода значения между единицами одной категории.
// Result равен NaN при неизвестной единице; Formatted в этом случае — "Error".
type Conversion struct {
	Category  Category
	FromUnit  string
	ToUnit    string
	Value     float64
	Result    float64
	Formatted string
}
