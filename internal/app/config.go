package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"unitcalc/internal/api/http"
	"unitcalc/internal/infrastructure/click"
	"unitcalc/internal/infrastructure/kafka"
	"unitcalc/internal/infrastructure/mongo"
	"unitcalc/internal/infrastructure/pg"
	"unitcalc/internal/infrastructure/redis"
)

const AppName = "UNITCALC"

// Бэкенды хранилища истории.
const (
	HistoryBackendPostgres = "postgres"
	HistoryBackendMongo    = "mongo"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом UNITCALC.
// HistoryBackend выбирает реализацию хранилища истории: postgres или mongo.
type Config struct {
	LogLevel       string            `envconfig:"LOG_LEVEL" default:"info"`
	HistoryBackend string            `envconfig:"HISTORY_BACKEND" default:"postgres"`
	Server         http.ServerConfig `envconfig:"SERVER"`
	DB             pg.Config         `envconfig:"DB"`
	Mongo          mongo.Config      `envconfig:"MONGO"`
	Redis          redis.Config      `envconfig:"REDIS"`
	Kafka          kafka.Config      `envconfig:"KAFKA"`
	ClickHouse     click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет
// структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
