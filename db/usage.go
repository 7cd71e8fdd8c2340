package db

import "database/sql"

// Действия для журнала использования.
const (
	ActionCalories = "calories"
	ActionVideo    = "video"
	ActionCurrency = "currency"
	ActionWeather  = "weather"
	ActionFeedback = "feedback"
)

// LogUsage пишет факт использования функции в журнал.
func LogUsage(db *sql.DB, chatID int64, action string) error {
	_, err := db.Exec(`
		INSERT INTO usage_log (chat_id, action)
		VALUES ($1, $2)
	`, chatID, action)
	return err
}
