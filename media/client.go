// Package media — получение видео по ссылке (TikTok, Instagram)
// через внешний резолвер с запасным прямым скачиванием.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	resolverURL = "https://api.cobalt.tools/api/json"

	expandTimeout = 10 * time.Second
	fetchTimeout  = 15 * time.Second

	// Ограничение на прямое скачивание, Telegram всё равно больше не примет.
	maxFetchBytes = 50 << 20
)

var ErrResolve = errors.New("не удалось получить медиафайл")

// Kind — тип полученного артефакта.
type Kind int

const (
	KindVideo Kind = iota
	KindImage
	KindOther
)

// Artifact — результат скачивания: либо прямая ссылка, либо сами байты.
type Artifact struct {
	Kind     Kind
	URL      string
	Data     []byte
	FileName string
}

type Client struct {
	httpc   *http.Client
	expandc *http.Client
	fetchc  *http.Client
}

func New() *Client {
	return &Client{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		expandc: &http.Client{Timeout: expandTimeout},
		fetchc:  &http.Client{Timeout: fetchTimeout},
	}
}

// Expand раскрывает короткую ссылку HEAD-запросом по редиректам.
// При любой ошибке возвращает исходный URL — дальше попробуем как есть.
func (c *Client) Expand(ctx context.Context, raw string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, raw, nil)
	if err != nil {
		return raw
	}

	resp, err := c.expandc.Do(req)
	if err != nil {
		return raw
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	if final == "" {
		return raw
	}
	return final
}

// Referer подбирает источник для заголовка Referer по домену ссылки.
func Referer(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "tiktok"):
		return "https://www.tiktok.com/"
	case strings.Contains(host, "instagram"):
		return "https://www.instagram.com/"
	}
	return ""
}

// Resolve запрашивает у резолвера прямую ссылку на медиафайл.
func (c *Client) Resolve(ctx context.Context, raw, referer string) (Artifact, error) {
	payload, err := json.Marshal(map[string]string{"url": raw})
	if err != nil {
		return Artifact{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resolverURL, bytes.NewReader(payload))
	if err != nil {
		return Artifact{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Artifact{}, fmt.Errorf("ошибка запроса к резолверу: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Artifact{}, fmt.Errorf("ошибка чтения ответа резолвера: %w", err)
	}

	var data struct {
		Status string `json:"status"`
		URL    string `json:"url"`
		Text   string `json:"text"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return Artifact{}, fmt.Errorf("ошибка разбора ответа резолвера: %w", err)
	}

	switch data.Status {
	case "stream", "redirect", "success":
		if data.URL == "" {
			return Artifact{}, ErrResolve
		}
	case "picker":
		// Карусель из нескольких фото отдаём как неподдерживаемый тип.
		return Artifact{Kind: KindImage}, nil
	default:
		return Artifact{}, fmt.Errorf("%w: статус %q", ErrResolve, data.Status)
	}

	return Artifact{Kind: classifyURL(data.URL), URL: data.URL, FileName: fileName(data.URL)}, nil
}

// DirectFetch скачивает файл напрямую и определяет тип по Content-Type.
// Используется один раз как запасной вариант после отказа резолвера.
func (c *Client) DirectFetch(ctx context.Context, raw, referer string) (Artifact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return Artifact{}, err
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := c.fetchc.Do(req)
	if err != nil {
		return Artifact{}, fmt.Errorf("ошибка прямого скачивания: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Artifact{}, fmt.Errorf("прямое скачивание вернуло статус %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return Artifact{}, fmt.Errorf("ошибка чтения файла: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	return Artifact{
		Kind:     classifyContentType(ct),
		Data:     data,
		FileName: fileName(raw),
	}, nil
}

func classifyContentType(ct string) Kind {
	switch {
	case strings.HasPrefix(ct, "video/"):
		return KindVideo
	case strings.HasPrefix(ct, "image/"):
		return KindImage
	}
	return KindOther
}

func classifyURL(raw string) Kind {
	u, err := url.Parse(raw)
	if err != nil {
		return KindOther
	}
	path := strings.ToLower(u.Path)
	switch {
	case strings.HasSuffix(path, ".mp4"), strings.HasSuffix(path, ".mov"),
		strings.HasSuffix(path, ".webm"), strings.Contains(path, "video"):
		return KindVideo
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"),
		strings.HasSuffix(path, ".png"), strings.HasSuffix(path, ".webp"):
		return KindImage
	}
	return KindOther
}

func fileName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "video"
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "video"
	}
	return parts[len(parts)-1]
}
