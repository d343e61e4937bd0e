package click

import (
	"context"
	"fmt"

	"unitcalc/internal/domain"
)

const calculationsAnalyticsFull = "default.calculations_analytics"

// CalculationWriter записывает вычисления в ClickHouse в формате, удобном для
// аналитики (частота операций, распределение по времени и т.д.).
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель вычислений для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

// EnsureTable создаёт таблицу вычислений для аналитики в default, если её ещё нет.
// Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			expression String,
			result String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY created_at
		PARTITION BY toYYYYMM(created_at)`,
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одно вычисление в ClickHouse.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, c domain.Calculation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (expression, result, created_at) VALUES (?, ?, ?)",
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query, c.Expression, c.Result, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
