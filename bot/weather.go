package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dietbot/db"
	"dietbot/session"
	"dietbot/weather"
)

const weatherCityList = weather.CityList

const weatherTimeout = 10 * time.Second

// handleWeather показывает погоду и в любом случае возвращает в меню.
func (b *Bot) handleWeather(s *session.Session, chatID int64, text string) {
	query, ok := weather.Resolve(text)
	if !ok {
		s.State = session.StateMenu
		b.reply(chatID, "Такой город не поддерживается. Доступные: "+weatherCityList+".")
		b.sendMenu(chatID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), weatherTimeout)
	defer cancel()

	report, err := b.weather.Current(ctx, query)

	s.State = session.StateMenu

	if err != nil {
		log.Printf("❌ Ошибка получения погоды для %q: %v", query, err)
		b.reply(chatID, "😔 Не удалось получить погоду. Попробуйте позже.")
		b.sendMenu(chatID)
		return
	}

	b.logUsage(chatID, db.ActionWeather)
	b.reply(chatID, fmt.Sprintf("🌤 Погода в %s: %.0f°C, %s",
		strings.TrimSpace(text), report.Temp, report.Description))
	b.sendMenu(chatID)
}
