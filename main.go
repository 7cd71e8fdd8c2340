package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"dietbot/bot"
	"dietbot/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env не найден, читаем окружение как есть")
	}

	telegramToken := os.Getenv("TELEGRAM_TOKEN")
	if telegramToken == "" {
		log.Fatal("❌ TELEGRAM_TOKEN не найден в окружении")
	}

	weatherKey := os.Getenv("WEATHER_API")
	if weatherKey == "" {
		log.Fatal("❌ WEATHER_API не найден в окружении")
	}

	var adminChatID int64
	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("❌ Некорректный ADMIN_CHAT_ID: %v", err)
		}
		adminChatID = id
	}

	botAPI, err := tgbotapi.NewBotAPI(telegramToken)
	if err != nil {
		log.Fatalf("❌ Ошибка запуска бота: %v", err)
	}
	log.Printf("✅ Бот авторизован как %s", botAPI.Self.UserName)

	cfg := bot.Config{
		AdminChatID: adminChatID,
		WeatherKey:  weatherKey,
	}

	// База опциональна: без неё бот работает, но не ведёт журнал использования.
	if os.Getenv("DB_HOST") != "" {
		sqlDB, err := db.Connect()
		if err != nil {
			log.Fatalf("❌ Ошибка подключения к базе: %v", err)
		}
		log.Println("✅ Подключено к базе данных")

		if err := db.Migrate(sqlDB); err != nil {
			log.Fatalf("❌ Ошибка при миграции базы данных: %v", err)
		}
		log.Println("✅ Миграции выполнены")

		cfg.DB = sqlDB
	} else {
		log.Println("⚠️ DB_HOST не задан, журнал использования отключён")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("🚀 Бот запущен")
	bot.New(botAPI, cfg).Start(ctx)
}
