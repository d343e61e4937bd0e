package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unitcalc/internal/domain"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to string
		category domain.Category
		want     string
	}{
		{
			name:     "целое значение",
			value:    100,
			from:     "ft",
			to:       "m",
			category: domain.CategoryLength,
			want:     "length 100 ft -> m",
		},
		{
			name:     "дробное значение без хвостовых нулей",
			value:    2.5,
			from:     "gal",
			to:       "l",
			category: domain.CategoryVolume,
			want:     "volume 2.5 gal -> l",
		},
		{
			name:     "отрицательное значение",
			value:    -45,
			from:     "deg",
			to:       "rad",
			category: domain.CategoryAngle,
			want:     "angle -45 deg -> rad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cacheKey(tt.value, tt.from, tt.to, tt.category))
		})
	}
}
