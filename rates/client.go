// Package rates — курсы валют через открытый API с кэшированием.
// Все кросс-курсы считаются через опорную валюту (USD):
// rate(from→to) = rate(USD→to) / rate(USD→from).
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"
)

const (
	apiURL   = "https://open.er-api.com/v6/latest/USD"
	cacheTTL = 5 * time.Minute
)

var (
	ErrUnsupported = errors.New("валюта не поддерживается")
	ErrNoRate      = errors.New("курс недоступен")
)

// Source отдаёт таблицу курсов опорной валюты. Подменяется в тестах.
type Source func(ctx context.Context) (map[string]float64, error)

type Client struct {
	source Source

	mu        sync.Mutex
	table     map[string]float64
	fetchedAt time.Time
}

func New() *Client {
	httpc := &http.Client{Timeout: 10 * time.Second}
	return NewWithSource(func(ctx context.Context) (map[string]float64, error) {
		return fetchTable(ctx, httpc)
	})
}

func NewWithSource(src Source) *Client {
	return &Client{source: src}
}

// Convert переводит сумму из валюты from в валюту to и округляет до копеек.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	table, err := c.pivotTable(ctx)
	if err != nil {
		return 0, err
	}

	rateFrom, okFrom := table[from]
	rateTo, okTo := table[to]
	if !okFrom || !okTo {
		return 0, ErrUnsupported
	}
	if rateFrom <= 0 || rateTo <= 0 {
		return 0, ErrNoRate
	}

	rate := rateTo / rateFrom
	return math.Round(amount*rate*100) / 100, nil
}

// pivotTable возвращает кэшированную таблицу курсов, обновляя её по TTL.
// Кэш общий на процесс; одновременное обновление не страшно —
// побеждает последняя запись, значение идемпотентно в пределах окна.
func (c *Client) pivotTable(ctx context.Context) (map[string]float64, error) {
	c.mu.Lock()
	if c.table != nil && time.Since(c.fetchedAt) < cacheTTL {
		table := c.table
		c.mu.Unlock()
		return table, nil
	}
	c.mu.Unlock()

	table, err := c.source(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.table = table
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return table, nil
}

func fetchTable(ctx context.Context, httpc *http.Client) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса курсов: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("сервис курсов вернул статус %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var data struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	if data.Result != "success" || len(data.Rates) == 0 {
		return nil, ErrNoRate
	}
	return data.Rates, nil
}
