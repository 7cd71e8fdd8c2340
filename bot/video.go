package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dietbot/db"
	"dietbot/media"
	"dietbot/session"
	"dietbot/validate"
)

// handleVideo скачивает ролик по ссылке. Состояние остаётся VIDEO при любом
// исходе — можно сразу присылать следующую ссылку.
func (b *Bot) handleVideo(s *session.Session, chatID int64, text string) {
	u, ok := validate.VideoURL(text)
	if !ok {
		b.reply(chatID, "🔗 Нужна ссылка на видео из TikTok или Instagram. Попробуйте ещё раз:")
		return
	}

	b.reply(chatID, "⏬ Скачиваю, подождите немного...")

	ctx := context.Background()
	expanded := b.media.Expand(ctx, u.String())
	referer := media.Referer(expanded)

	art, err := b.media.Resolve(ctx, expanded, referer)
	if err != nil {
		log.Printf("⚠️ Резолвер не справился с %s: %v", expanded, err)
		art, err = b.media.DirectFetch(ctx, expanded, referer)
	}
	if err != nil {
		log.Printf("❌ Не удалось скачать %s: %v", expanded, err)
		b.reply(chatID, "😔 Не получилось скачать видео. Попробуйте позже или пришлите другую ссылку.")
		return
	}

	switch art.Kind {
	case media.KindVideo:
		b.send(tgbotapi.NewVideo(chatID, artifactFile(art)))
	case media.KindImage:
		b.reply(chatID, "🖼 Фото и карусели пока не поддерживаются.")
		return
	default:
		b.send(tgbotapi.NewDocument(chatID, artifactFile(art)))
	}

	b.logUsage(chatID, db.ActionVideo)
}

func artifactFile(art media.Artifact) tgbotapi.RequestFileData {
	if len(art.Data) > 0 {
		return tgbotapi.FileBytes{Name: art.FileName, Bytes: art.Data}
	}
	return tgbotapi.FileURL(art.URL)
}
