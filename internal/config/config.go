package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Учётные данные админ-панели по умолчанию (можно переопределить через env)
const (
	DefaultAdminName     = "Васильев Владимир Николаевич"
	DefaultAdminPassword = "1683"
)

type Config struct {
	TelegramToken  string
	DBDSN          string
	Environment    string
	AdminName      string
	AdminPassword  string
	MigrationsPath string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    os.Getenv("ENV"),
		AdminName:      os.Getenv("ADMIN_NAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.AdminName == "" {
		cfg.AdminName = DefaultAdminName
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}
