package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"unitcalc/internal/domain"
)

// calculationDoc — документ в коллекции calculations. Числовой id Mongo сам
// не генерирует, поэтому пишем UnixMilli момента сохранения — его хватает
// и для сортировки, и для удаления по id, и он не теряет точность в JSON:
// наносекунды (~1.7e18) не помещаются в целые числа JS (2^53),
// и браузерный клиент промахивался бы мимо документа при DELETE.
type calculationDoc struct {
	ID         int64     `bson:"id"`
	Expression string    `bson:"expression"`
	Result     string    `bson:"result"`
	CreatedAt  time.Time `bson:"created_at"`
}

// CalculationRepo реализует ports.IHistoryRepository для MongoDB.
type CalculationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCalculationRepo возвращает репозиторий истории вычислений.
func NewCalculationRepo(client *Client, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{client: client, log: log}
}

// SaveCalculation сохраняет вычисление в коллекцию.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, c domain.Calculation) error {
	doc := calculationDoc{
		ID:         c.CreatedAt.UnixMilli(),
		Expression: c.Expression,
		Result:     c.Result,
		CreatedAt:  c.CreatedAt,
	}
	if _, err := r.client.Coll().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// ListCalculations возвращает историю вычислений (последние сначала).
func (r *CalculationRepo) ListCalculations(ctx context.Context) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("ListCalculations failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Calculation{
			ID:         int(d.ID),
			Expression: d.Expression,
			Result:     d.Result,
			CreatedAt:  d.CreatedAt,
		})
	}
	return list, nil
}

// RemoveCalculation удаляет одну запись по id.
func (r *CalculationRepo) RemoveCalculation(ctx context.Context, id int) error {
	_, err := r.client.Coll().DeleteOne(ctx, bson.M{"id": int64(id)})
	if err != nil {
		r.log.Debug("RemoveCalculation failed", "id", id, "error", err)
	}
	return err
}

// ClearCalculations удаляет все записи истории.
func (r *CalculationRepo) ClearCalculations(ctx context.Context) error {
	_, err := r.client.Coll().DeleteMany(ctx, bson.M{})
	if err != nil {
		r.log.Debug("ClearCalculations failed", "error", err)
	}
	return err
}

// Ping проверяет доступность БД.
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.client.Client.Ping(ctx, nil)
}
