package converter

import "unitcalc/internal/domain"

// ConvertRequest — запрос на конвертацию (POST /api/v1/convert).
// Value — указатель: ноль — валидное значение, binding не должен его резать.
type ConvertRequest struct {
	Value    *float64 `json:"value" binding:"required"`
	From     string   `json:"from" binding:"required"`
	To       string   `json:"to" binding:"required"`
	Category string   `json:"category" binding:"required"`
}

// ConvertResponse — результат конвертации. При неизвестной единице числового
// результата нет (NaN в JSON не кодируется), formatted равен "Error".
type ConvertResponse struct {
	Category  string   `json:"category"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Value     float64  `json:"value"`
	Result    *float64 `json:"result,omitempty"`
	Formatted string   `json:"formatted"`
}

// UnitDTO — единица измерения в справочнике.
type UnitDTO struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	System       string  `json:"system"`
	ToBase       float64 `json:"toBase"`
}

// CategoryDTO — категория со списком единиц.
type CategoryDTO struct {
	Key             string    `json:"key"`
	Name            string    `json:"name"`
	BaseName        string    `json:"baseName"`
	DefaultFromUnit string    `json:"defaultFromUnit"`
	DefaultToUnit   string    `json:"defaultToUnit"`
	Units           []UnitDTO `json:"units"`
}

// CategoriesResponse — весь справочник единиц.
type CategoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

// ErrorResponse — ответ с текстом ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}

func fromCategory(c domain.CategoryDefinition) CategoryDTO {
	units := make([]UnitDTO, len(c.Units))
	for i, u := range c.Units {
		units[i] = UnitDTO{
			Key:          u.Key,
			Name:         u.Name,
			Abbreviation: u.Abbreviation,
			System:       string(u.System),
			ToBase:       u.ToBase,
		}
	}
	return CategoryDTO{
		Key:             string(c.Key),
		Name:            c.Name,
		BaseName:        c.BaseName,
		DefaultFromUnit: c.DefaultFromUnit,
		DefaultToUnit:   c.DefaultToUnit,
		Units:           units,
	}
}
