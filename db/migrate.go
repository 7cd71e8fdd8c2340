package db

import (
	"database/sql"
	"fmt"
)

func Migrate(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id SERIAL PRIMARY KEY,
			chat_id BIGINT UNIQUE NOT NULL,
			username TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW()
		);`,

		`CREATE TABLE IF NOT EXISTS usage_log (
			id SERIAL PRIMARY KEY,
			chat_id BIGINT NOT NULL,
			action TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		);`,
	}

	for i, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("ошибка миграции #%d: %w", i+1, err)
		}
	}
	return nil
}
