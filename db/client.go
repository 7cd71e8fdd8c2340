package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// Connect открывает соединение с Postgres по переменным окружения DB_*.
func Connect() (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия соединения: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("база недоступна: %w", err)
	}
	return conn, nil
}

// CreateClient сохраняет пользователя при /start (повторный /start не дублирует).
func CreateClient(db *sql.DB, chatID int64, username string) error {
	_, err := db.Exec(`
		INSERT INTO clients (chat_id, username)
		VALUES ($1, $2)
		ON CONFLICT (chat_id) DO NOTHING
	`, chatID, username)
	return err
}
