package bot

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dietbot/db"
	"dietbot/media"
	"dietbot/rates"
	"dietbot/session"
	"dietbot/weather"
)

const (
	// Очередь сообщений одного чата; при переполнении просим подождать.
	workerQueue = 8

	sessionTTL   = 12 * time.Hour
	janitorEvery = 30 * time.Minute
)

type Config struct {
	AdminChatID int64
	WeatherKey  string
	DB          *sql.DB // nil — бот работает без журнала использования
}

type Bot struct {
	api       *tgbotapi.BotAPI
	sessions  *session.Manager
	rates     *rates.Client
	weather   *weather.Client
	media     *media.Client
	database  *sql.DB
	adminChat int64

	// Подменяется в тестах, в бою шлёт через Telegram API.
	send func(c tgbotapi.Chattable)

	mu      sync.Mutex
	workers map[int64]*chatWorker
}

// chatWorker сериализует сообщения одного чата: внутри чата строгий
// порядок, разные чаты обрабатываются параллельно.
type chatWorker struct {
	jobs chan *tgbotapi.Message
}

func New(api *tgbotapi.BotAPI, cfg Config) *Bot {
	b := &Bot{
		api:       api,
		sessions:  session.NewManager(),
		rates:     rates.New(),
		weather:   weather.New(cfg.WeatherKey),
		media:     media.New(),
		database:  cfg.DB,
		adminChat: cfg.AdminChatID,
		workers:   make(map[int64]*chatWorker),
	}
	b.send = func(c tgbotapi.Chattable) {
		if _, err := api.Send(c); err != nil {
			log.Println("❌ Ошибка отправки:", err)
		}
	}
	return b
}

// Start крутит long-poll цикл до отмены контекста.
func (b *Bot) Start(ctx context.Context) {
	b.sessions.StartJanitor(sessionTTL, janitorEvery)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.enqueue(update.Message)
		}
	}
}

func (b *Bot) enqueue(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.mu.Lock()
	w, ok := b.workers[chatID]
	if !ok {
		w = &chatWorker{jobs: make(chan *tgbotapi.Message, workerQueue)}
		b.workers[chatID] = w
		go b.runWorker(w)
	}
	b.mu.Unlock()

	select {
	case w.jobs <- msg:
	default:
		b.reply(chatID, "⏳ Подождите, я ещё обрабатываю предыдущие сообщения.")
	}
}

func (b *Bot) runWorker(w *chatWorker) {
	for msg := range w.jobs {
		b.process(msg)
	}
}

// process — граница одного сообщения: любая паника гасится здесь,
// чтобы сбой одного чата не ронял бота целиком.
func (b *Bot) process(msg *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Паника при обработке сообщения из чата %d: %v", msg.Chat.ID, r)
			b.reply(msg.Chat.ID, "😔 Что-то пошло не так. Попробуйте ещё раз.")
		}
	}()
	b.handleMessage(msg)
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyKB(chatID int64, text string, kb tgbotapi.ReplyKeyboardMarkup) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = kb
	b.send(m)
}

// logUsage пишет в журнал, если база подключена.
func (b *Bot) logUsage(chatID int64, action string) {
	if b.database == nil {
		return
	}
	if err := db.LogUsage(b.database, chatID, action); err != nil {
		log.Println("⚠️ Не удалось записать журнал использования:", err)
	}
}
