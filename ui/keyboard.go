package ui

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dietbot/validate"
)

// BackButton — кнопка возврата в меню из любого шага.
const BackButton = "⬅️ Назад в меню"

// Главное меню
func MainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🍎 Рассчитать калории"),
			tgbotapi.NewKeyboardButton("🎬 Скачать видео"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("💱 Конвертер валют"),
			tgbotapi.NewKeyboardButton("🌤 Погода"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("ℹ️ Информация"),
			tgbotapi.NewKeyboardButton("💬 Обратная связь"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

var Gender = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("Мужчина"),
		tgbotapi.NewKeyboardButton("Женщина"),
	),
	backRow(),
)

var Activity = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("1"),
		tgbotapi.NewKeyboardButton("2"),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("3"),
		tgbotapi.NewKeyboardButton("4"),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("5"),
	),
	backRow(),
)

// Клавиатура выбора валюты
func CurrencyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	row := []tgbotapi.KeyboardButton{}
	for _, code := range validate.Currencies {
		row = append(row, tgbotapi.NewKeyboardButton(code))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, backRow())

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// Клавиатура после результата конвертации
var AfterConvert = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("🔁 Выбрать другие валюты"),
	),
	backRow(),
)

// BackKeyboard — только возврат в меню (шаги с вводом текста).
var BackKeyboard = tgbotapi.NewReplyKeyboard(backRow())

func backRow() []tgbotapi.KeyboardButton {
	return tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(BackButton),
	)
}
