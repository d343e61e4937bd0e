package pg

import (
	"context"
	"log/slog"

	"unitcalc/internal/domain"
)

// CalculationRepo реализует ports.IHistoryRepository для PostgreSQL.
type CalculationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCalculationRepo возвращает репозиторий истории вычислений.
func NewCalculationRepo(db *DB, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{db: db, log: log}
}

// SaveCalculation сохраняет вычисление в БД.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, c domain.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (expression, result, created_at)
		 VALUES ($1, $2, $3)`,
		c.Expression, c.Result, c.CreatedAt)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// ListCalculations возвращает историю вычислений из БД (последние сначала).
func (r *CalculationRepo) ListCalculations(ctx context.Context) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, expression, result, created_at
		 FROM calculations ORDER BY created_at DESC`)
	if err != nil {
		r.log.Debug("ListCalculations failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Calculation
	for rows.Next() {
		var c domain.Calculation
		if err := rows.Scan(&c.ID, &c.Expression, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// RemoveCalculation удаляет одну запись по id.
func (r *CalculationRepo) RemoveCalculation(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = $1`, id)
	if err != nil {
		r.log.Debug("RemoveCalculation failed", "id", id, "error", err)
	}
	return err
}

// ClearCalculations удаляет все записи истории.
func (r *CalculationRepo) ClearCalculations(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calculations`)
	if err != nil {
		r.log.Debug("ClearCalculations failed", "error", err)
	}
	return err
}

// Ping проверяет доступность БД (readiness).
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
