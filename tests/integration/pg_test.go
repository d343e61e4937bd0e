package integration

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitcalc/internal/domain"
	"unitcalc/internal/infrastructure/pg"
	"unitcalc/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgDB подключается к тестовой БД и создаёт таблицу calculations.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	// Подключаемся напрямую через database/sql для создания таблицы
	conn, err := sql.Open("postgres", pgContainer.DSN())
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	// Создаём таблицу (миграция)
	_, err = conn.Exec(`
		CREATE TABLE IF NOT EXISTS calculations (
			id SERIAL PRIMARY KEY,
			expression TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	require.NoError(t, err, "не удалось создать таблицу calculations")

	// Очищаем таблицу перед каждым тестом
	_, err = conn.Exec("TRUNCATE TABLE calculations RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу calculations")

	conn.Close()

	// Теперь создаём pg.DB через наш модуль
	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось создать pg.DB")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// =============================================================================
// Тесты PostgreSQL репозитория
// =============================================================================

func TestPgRepo_SaveCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	c := domain.Calculation{
		Expression: "2 + 3",
		Result:     "5",
		CreatedAt:  time.Now(),
	}

	err := repo.SaveCalculation(ctx, c)
	require.NoError(t, err, "SaveCalculation должен успешно сохранить")

	// Проверяем напрямую в БД
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM calculations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_ListCalculations(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	// Вставляем несколько вычислений
	calcs := []domain.Calculation{
		{Expression: "1 + 1", Result: "2", CreatedAt: time.Now().Add(-2 * time.Second)},
		{Expression: "2 + 2", Result: "4", CreatedAt: time.Now().Add(-1 * time.Second)},
		{Expression: "3 + 3", Result: "6", CreatedAt: time.Now()},
	}

	for _, c := range calcs {
		err := repo.SaveCalculation(ctx, c)
		require.NoError(t, err)
	}

	history, err := repo.ListCalculations(ctx)
	require.NoError(t, err, "ListCalculations должен успешно вернуть данные")

	assert.Len(t, history, 3, "должно быть 3 записи")

	// Проверяем сортировку (последние сначала)
	assert.Equal(t, "6", history[0].Result, "первая запись — самая новая")
	assert.Equal(t, "4", history[1].Result)
	assert.Equal(t, "2", history[2].Result, "последняя запись — самая старая")

	// Проверяем, что ID назначены
	assert.NotZero(t, history[0].ID, "ID должен быть назначен")
}

func TestPgRepo_ListCalculations_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	history, err := repo.ListCalculations(ctx)
	require.NoError(t, err, "ListCalculations на пустой таблице не должен возвращать ошибку")
	assert.Empty(t, history, "история должна быть пустой")
}

func TestPgRepo_RemoveCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	require.NoError(t, repo.SaveCalculation(ctx, domain.Calculation{
		Expression: "6 * 7", Result: "42", CreatedAt: time.Now(),
	}))

	history, err := repo.ListCalculations(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	err = repo.RemoveCalculation(ctx, history[0].ID)
	require.NoError(t, err, "RemoveCalculation должен успешно удалить")

	history, err = repo.ListCalculations(ctx)
	require.NoError(t, err)
	assert.Empty(t, history, "после удаления записей быть не должно")
}

func TestPgRepo_ClearCalculations(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	for _, c := range []domain.Calculation{
		{Expression: "1 + 1", Result: "2", CreatedAt: time.Now()},
		{Expression: "2 + 2", Result: "4", CreatedAt: time.Now()},
	} {
		require.NoError(t, repo.SaveCalculation(ctx, c))
	}

	err := repo.ClearCalculations(ctx)
	require.NoError(t, err, "ClearCalculations должен успешно очистить")

	history, err := repo.ListCalculations(ctx)
	require.NoError(t, err)
	assert.Empty(t, history, "история должна быть пустой после очистки")
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	err := repo.Ping(ctx)
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
