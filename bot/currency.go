package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"dietbot/db"
	"dietbot/session"
	"dietbot/ui"
	"dietbot/validate"
)

const convertTimeout = 10 * time.Second

func (b *Bot) handleCurrencyFrom(s *session.Session, chatID int64, text string) {
	code, ok := validate.Currency(text)
	if !ok {
		b.replyKB(chatID, "Такая валюта не поддерживается. Выберите из списка:", ui.CurrencyKeyboard())
		return
	}
	s.Currency.From = code
	s.State = session.StateCurrencyTo
	b.replyKB(chatID, "В какую валюту переводим?", ui.CurrencyKeyboard())
}

func (b *Bot) handleCurrencyTo(s *session.Session, chatID int64, text string) {
	code, ok := validate.Currency(text)
	if !ok {
		b.replyKB(chatID, "Такая валюта не поддерживается. Выберите из списка:", ui.CurrencyKeyboard())
		return
	}
	s.Currency.To = code
	s.State = session.StateCurrencyAmount
	b.replyKB(chatID, fmt.Sprintf("Введите сумму в %s:", s.Currency.From), ui.BackKeyboard)
}

func (b *Bot) handleCurrencyAmount(s *session.Session, chatID int64, text string) {
	amount, ok := validate.Number(text)
	if !ok {
		b.reply(chatID, "Сумма должна быть положительным числом. Введите сумму:")
		return
	}

	from, to := s.Currency.From, s.Currency.To
	if from == "" || to == "" {
		b.abort(chatID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), convertTimeout)
	defer cancel()

	result, err := b.rates.Convert(ctx, amount, from, to)

	// И после результата, и после ошибки возвращаемся в меню,
	// предлагая сразу выбрать другую пару валют.
	s.ResetFields()
	s.State = session.StateMenu

	if err != nil {
		log.Printf("❌ Ошибка конвертации %s→%s: %v", from, to, err)
		b.replyKB(chatID, "😔 Не удалось получить курс. Попробуйте позже.", ui.AfterConvert)
		return
	}

	b.logUsage(chatID, db.ActionCurrency)
	b.replyKB(chatID,
		fmt.Sprintf("💱 %s %s = %s %s",
			strconv.FormatFloat(amount, 'f', -1, 64), from,
			strconv.FormatFloat(result, 'f', 2, 64), to),
		ui.AfterConvert)
}
