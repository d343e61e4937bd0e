// Package units — каталог единиц измерения, конвертация и форматирование результата.
// Каталог собирается один раз при инициализации пакета и дальше только читается.
package units

import "unitcalc/internal/domain"

// categories — весь каталог в фиксированном порядке. Базовая единица каждой
// категории имеет ToBase == 1, остальные факторы выражены через неё.
var categories = []domain.CategoryDefinition{
	{
		Key:             domain.CategoryLength,
		Name:            "Length",
		BaseName:        "meter",
		DefaultFromUnit: "m",
		DefaultToUnit:   "ft",
		Units: []domain.UnitDefinition{
			{Key: "mm", Name: "Millimeter", Abbreviation: "mm", System: domain.SystemSI, ToBase: 0.001},
			{Key: "cm", Name: "Centimeter", Abbreviation: "cm", System: domain.SystemSI, ToBase: 0.01},
			{Key: "m", Name: "Meter", Abbreviation: "m", System: domain.SystemSI, ToBase: 1},
			{Key: "km", Name: "Kilometer", Abbreviation: "km", System: domain.SystemSI, ToBase: 1000},
			{Key: "in", Name: "Inch", Abbreviation: "in", System: domain.SystemImperial, ToBase: 0.0254},
			{Key: "ft", Name: "Foot", Abbreviation: "ft", System: domain.SystemImperial, ToBase: 0.3048},
			{Key: "yd", Name: "Yard", Abbreviation: "yd", System: domain.SystemImperial, ToBase: 0.9144},
			{Key: "mi", Name: "Mile", Abbreviation: "mi", System: domain.SystemImperial, ToBase: 1609.344},
		},
	},
	{
		Key:             domain.CategoryArea,
		Name:            "Area",
		BaseName:        "square meter",
		DefaultFromUnit: "sqm",
		DefaultToUnit:   "sqft",
		Units: []domain.UnitDefinition{
			{Key: "sqcm", Name: "Square Centimeter", Abbreviation: "cm²", System: domain.SystemSI, ToBase: 0.0001},
			{Key: "sqm", Name: "Square Meter", Abbreviation: "m²", System: domain.SystemSI, ToBase: 1},
			{Key: "ha", Name: "Hectare", Abbreviation: "ha", System: domain.SystemSI, ToBase: 10000},
			{Key: "sqkm", Name: "Square Kilometer", Abbreviation: "km²", System: domain.SystemSI, ToBase: 1e6},
			{Key: "sqin", Name: "Square Inch", Abbreviation: "in²", System: domain.SystemImperial, ToBase: 0.00064516},
			{Key: "sqft", Name: "Square Foot", Abbreviation: "ft²", System: domain.SystemImperial, ToBase: 0.09290304},
			{Key: "sqyd", Name: "Square Yard", Abbreviation: "yd²", System: domain.SystemImperial, ToBase: 0.83612736},
			{Key: "acre", Name: "Acre", Abbreviation: "ac", System: domain.SystemImperial, ToBase: 4046.8564224},
			{Key: "sqmi", Name: "Square Mile", Abbreviation: "mi²", System: domain.SystemImperial, ToBase: 2589988.110336},
		},
	},
	{
		Key:             domain.CategoryVolume,
		Name:            "Volume",
		BaseName:        "liter",
		DefaultFromUnit: "l",
		DefaultToUnit:   "gal",
		Units: []domain.UnitDefinition{
			{Key: "ml", Name: "Milliliter", Abbreviation: "ml", System: domain.SystemSI, ToBase: 0.001},
			{Key: "l", Name: "Liter", Abbreviation: "l", System: domain.SystemSI, ToBase: 1},
			{Key: "cum", Name: "Cubic Meter", Abbreviation: "m³", System: domain.SystemSI, ToBase: 1000},
			{Key: "floz", Name: "Fluid Ounce", Abbreviation: "fl oz", System: domain.SystemImperial, ToBase: 0.0295735295625},
			{Key: "cup", Name: "Cup", Abbreviation: "cup", System: domain.SystemImperial, ToBase: 0.2365882365},
			{Key: "pt", Name: "Pint", Abbreviation: "pt", System: domain.SystemImperial, ToBase: 0.473176473},
			{Key: "qt", Name: "Quart", Abbreviation: "qt", System: domain.SystemImperial, ToBase: 0.946352946},
			{Key: "gal", Name: "Gallon", Abbreviation: "gal", System: domain.SystemImperial, ToBase: 3.785411784},
			{Key: "cuin", Name: "Cubic Inch", Abbreviation: "in³", System: domain.SystemImperial, ToBase: 0.016387064},
			{Key: "cuft", Name: "Cubic Foot", Abbreviation: "ft³", System: domain.SystemImperial, ToBase: 28.316846592},
		},
	},
	{
		Key:             domain.CategoryAngle,
		Name:            "Angle",
		BaseName:        "degree",
		DefaultFromUnit: "deg",
		DefaultToUnit:   "rad",
		Units: []domain.UnitDefinition{
			{Key: "rad", Name: "Radian", Abbreviation: "rad", System: domain.SystemSI, ToBase: 57.29577951308232},
			{Key: "grad", Name: "Gradian", Abbreviation: "gon", System: domain.SystemSI, ToBase: 0.9},
			{Key: "deg", Name: "Degree", Abbreviation: "°", System: domain.SystemImperial, ToBase: 1},
			{Key: "arcmin", Name: "Arcminute", Abbreviation: "′", System: domain.SystemImperial, ToBase: 0.016666666666666666},
			{Key: "arcsec", Name: "Arcsecond", Abbreviation: "″", System: domain.SystemImperial, ToBase: 0.0002777777777777778},
			{Key: "turn", Name: "Turn", Abbreviation: "tr", System: domain.SystemImperial, ToBase: 360},
		},
	},
}

// Categories возвращает копию каталога в фиксированном порядке.
func Categories() []domain.CategoryDefinition {
	out := make([]domain.CategoryDefinition, len(categories))
	copy(out, categories)
	return out
}

// Category возвращает описание категории по ключу.
// false возможен только для ключа вне закрытого множества категорий.
func Category(key domain.Category) (domain.CategoryDefinition, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return domain.CategoryDefinition{}, false
}

// FindUnit ищет единицу по ключу внутри категории.
func FindUnit(category domain.Category, key string) (domain.UnitDefinition, bool) {
	c, ok := Category(category)
	if !ok {
		return domain.UnitDefinition{}, false
	}
	for _, u := range c.Units {
		if u.Key == key {
			return u, true
		}
	}
	return domain.UnitDefinition{}, false
}
