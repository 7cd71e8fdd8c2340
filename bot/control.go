package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dietbot/calc"
	"dietbot/db"
	"dietbot/session"
	"dietbot/ui"
	"dietbot/validate"
)

const (
	menuText = "Выберите, что вы хотите сделать:"

	greetingText = "👋 Привет! Я умею рассчитывать норму калорий, скачивать видео, " +
		"конвертировать валюту и показывать погоду."

	helpText = "Команды:\n" +
		"/start — начать заново\n" +
		"/cancel — завершить диалог\n" +
		"/help — эта справка\n\n" +
		"Из любого шага можно вернуться кнопкой «" + ui.BackButton + "»."

	infoText = "ℹ️ Я считаю суточную норму калорий по формуле Миффлина-Сан Жеора " +
		"с поправкой на активность и категорию ИМТ, скачиваю видео из TikTok и Instagram, " +
		"конвертирую валюты по актуальному курсу и показываю погоду " +
		"(города: Москва, Подольск, Московская область, Луганск)."
)

// isBackToMenu — глобальная фраза возврата в меню: сравнение без учёта
// регистра, пробелов и значка кнопки.
func isBackToMenu(text string) bool {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "⬅️")
	return strings.EqualFold(strings.TrimSpace(t), "назад в меню")
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(chatID, msg.Command(), msg.From.UserName)
		return
	}

	if msg.Text == "" {
		b.reply(chatID, "Я понимаю только текстовые сообщения.")
		return
	}

	b.handleText(chatID, msg.Text)
}

func (b *Bot) handleCommand(chatID int64, command, username string) {
	switch command {
	case "start":
		b.sessions.Reset(chatID)
		b.sessions.Get(chatID)
		if b.database != nil {
			if err := db.CreateClient(b.database, chatID, username); err != nil {
				log.Println("⚠️ Не удалось сохранить пользователя:", err)
			}
		}
		b.replyKB(chatID, greetingText+"\n\n"+menuText, ui.MainKeyboard())

	case "cancel":
		s := b.sessions.Get(chatID)
		s.ResetFields()
		s.State = session.StateEnd
		b.reply(chatID, "Диалог отменён. Введите /start, чтобы начать заново.")

	case "help":
		b.reply(chatID, helpText)

	default:
		b.reply(chatID, "Неизвестная команда. Введите /help.")
	}
}

// handleText — вход конечного автомата: (сессия, текст) → ответы.
func (b *Bot) handleText(chatID int64, text string) {
	s := b.sessions.Get(chatID)

	if s.State == session.StateEnd {
		b.reply(chatID, "Диалог завершён. Введите /start, чтобы начать заново.")
		return
	}

	// Возврат в меню срабатывает из любого шага до какой-либо валидации.
	// Как и /start, сбрасывает введённые поля (решение задокументировано в DESIGN.md).
	if s.State != session.StateMenu && isBackToMenu(text) {
		s.ResetFields()
		s.State = session.StateMenu
		b.sendMenu(chatID)
		return
	}

	switch s.State {
	case session.StateMenu:
		b.routeMenu(s, chatID, text)
	case session.StateHeight:
		b.handleHeight(s, chatID, text)
	case session.StateWeight:
		b.handleWeight(s, chatID, text)
	case session.StateAge:
		b.handleAge(s, chatID, text)
	case session.StateGender:
		b.handleGender(s, chatID, text)
	case session.StateActivity:
		b.handleActivity(s, chatID, text)
	case session.StateVideo:
		b.handleVideo(s, chatID, text)
	case session.StateCurrencyFrom:
		b.handleCurrencyFrom(s, chatID, text)
	case session.StateCurrencyTo:
		b.handleCurrencyTo(s, chatID, text)
	case session.StateCurrencyAmount:
		b.handleCurrencyAmount(s, chatID, text)
	case session.StateWeather:
		b.handleWeather(s, chatID, text)
	case session.StateFeedback:
		b.handleFeedback(s, chatID, text)
	default:
		b.abort(chatID)
	}
}

func (b *Bot) sendMenu(chatID int64) {
	b.replyKB(chatID, menuText, ui.MainKeyboard())
}

// abort — состояние потеряло свои данные: сбрасываем сессию и просим начать заново.
func (b *Bot) abort(chatID int64) {
	b.sessions.Reset(chatID)
	b.reply(chatID, "⚠️ Данные диалога потерялись. Введите /start, чтобы начать заново.")
}

func (b *Bot) routeMenu(s *session.Session, chatID int64, text string) {
	switch route(text) {
	case flowCalories:
		s.State = session.StateHeight
		b.replyKB(chatID, "Введите ваш рост в сантиметрах:", ui.BackKeyboard)
	case flowVideo:
		s.State = session.StateVideo
		b.replyKB(chatID, "🔗 Пришлите ссылку на видео из TikTok или Instagram:", ui.BackKeyboard)
	case flowCurrency:
		s.State = session.StateCurrencyFrom
		b.replyKB(chatID, "Из какой валюты переводим?", ui.CurrencyKeyboard())
	case flowWeather:
		s.State = session.StateWeather
		b.replyKB(chatID, "Введите название города ("+weatherCityList+"):", ui.BackKeyboard)
	case flowInfo:
		b.reply(chatID, infoText)
	case flowFeedback:
		s.State = session.StateFeedback
		b.replyKB(chatID, "💬 Напишите ваш отзыв или предложение:", ui.BackKeyboard)
	default:
		b.sendMenu(chatID)
	}
}

// --- Анкета калорийности ---

func (b *Bot) handleHeight(s *session.Session, chatID int64, text string) {
	v, ok := validate.Number(text)
	if !ok {
		b.reply(chatID, "Рост должен быть числом. Введите рост в сантиметрах:")
		return
	}
	s.Metrics.HeightCm = &v
	s.State = session.StateWeight
	b.reply(chatID, "Введите ваш вес в килограммах:")
}

func (b *Bot) handleWeight(s *session.Session, chatID int64, text string) {
	v, ok := validate.Number(text)
	if !ok {
		b.reply(chatID, "Вес должен быть числом. Введите вес в килограммах:")
		return
	}
	s.Metrics.WeightKg = &v
	s.State = session.StateAge
	b.reply(chatID, "Введите ваш возраст:")
}

func (b *Bot) handleAge(s *session.Session, chatID int64, text string) {
	v, ok := validate.Number(text)
	if !ok {
		b.reply(chatID, "Возраст должен быть числом. Введите ваш возраст:")
		return
	}
	s.Metrics.AgeYears = &v
	s.State = session.StateGender
	b.replyKB(chatID, "Укажите ваш пол:", ui.Gender)
}

func (b *Bot) handleGender(s *session.Session, chatID int64, text string) {
	g, ok := validate.Gender(text)
	if !ok {
		b.replyKB(chatID, "Выберите пол кнопкой: Мужчина или Женщина.", ui.Gender)
		return
	}
	s.Metrics.Gender = &g
	s.State = session.StateActivity
	b.replyKB(chatID,
		"Выберите уровень активности (1-5):\n"+
			"1. Минимальный (1.2)\n"+
			"2. Лёгкая активность (1.375)\n"+
			"3. Умеренная (1.55)\n"+
			"4. Высокая (1.725)\n"+
			"5. Очень высокая (1.9)",
		ui.Activity)
}

func (b *Bot) handleActivity(s *session.Session, chatID int64, text string) {
	a, ok := validate.Activity(text)
	if !ok {
		b.replyKB(chatID, "Выберите уровень активности кнопкой от 1 до 5.", ui.Activity)
		return
	}
	s.Metrics.Activity = &a

	if !s.Metrics.Complete() {
		b.abort(chatID)
		return
	}

	res := calc.Recommend(
		*s.Metrics.HeightCm,
		*s.Metrics.WeightKg,
		*s.Metrics.AgeYears,
		*s.Metrics.Gender,
		*s.Metrics.Activity,
	)
	b.logUsage(chatID, db.ActionCalories)

	s.ResetFields()
	s.State = session.StateMenu
	b.replyKB(chatID, formatResult(res)+"\n\nСпасибо за использование бота!", ui.MainKeyboard())
}

func formatResult(res calc.Result) string {
	bmi := strconv.FormatFloat(res.BMI, 'f', -1, 64)
	switch res.Band {
	case calc.Underweight:
		return fmt.Sprintf("Ваш ИМТ: %s (недостаток). Рекомендуемая калорийность: %d ккал.",
			bmi, res.Recommended[0])
	case calc.Normal:
		return fmt.Sprintf("Ваш ИМТ: %s (норма). Для поддержания веса: %d ккал.",
			bmi, res.Recommended[0])
	case calc.Overweight:
		return fmt.Sprintf("Ваш ИМТ: %s (избыточный). Рекомендуемая калорийность: %d ккал.",
			bmi, res.Recommended[0])
	default:
		return fmt.Sprintf("Ваш ИМТ: %s (ожирение). Рекомендуемая калорийность: %d ккал "+
			"или %d ккал для усиленного похудения.",
			bmi, res.Recommended[0], res.Recommended[1])
	}
}

// --- Обратная связь ---

func (b *Bot) handleFeedback(s *session.Session, chatID int64, text string) {
	if b.adminChat != 0 {
		b.send(tgbotapi.NewMessage(b.adminChat, fmt.Sprintf("💬 Отзыв от %d:\n%s", chatID, text)))
	}
	b.logUsage(chatID, db.ActionFeedback)

	s.State = session.StateMenu
	b.replyKB(chatID, "Спасибо за отзыв! Мы обязательно его прочитаем.", ui.MainKeyboard())
}
