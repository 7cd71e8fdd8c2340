// Package weather — текущая погода через OpenWeatherMap
// для фиксированного списка городов.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// cities — сопоставление пользовательского названия с запросом к API.
var cities = map[string]string{
	"москва":             "Moscow,ru",
	"московская область": "Moscow,ru",
	"подольск":           "Podolsk,ru",
	"луганск":            "Luhansk,ua",
}

// CityList — подсказка для пользователя.
const CityList = "Москва, Подольск, Московская область, Луганск"

// Resolve проверяет, что город поддерживается, и возвращает имя для запроса.
func Resolve(city string) (string, bool) {
	q, ok := cities[strings.ToLower(strings.TrimSpace(city))]
	return q, ok
}

type Report struct {
	Temp        float64
	Description string
}

type Client struct {
	apiKey string
	httpc  *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpc:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Current запрашивает текущую погоду по имени города из Resolve.
func (c *Client) Current(ctx context.Context, query string) (Report, error) {
	u := fmt.Sprintf(
		"https://api.openweathermap.org/data/2.5/weather?q=%s&appid=%s&units=metric&lang=ru",
		url.QueryEscape(query), c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("ошибка запроса погоды: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var data struct {
		Main *struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return Report{}, fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	if data.Main == nil || len(data.Weather) == 0 {
		return Report{}, fmt.Errorf("неполный ответ сервиса погоды")
	}

	return Report{
		Temp:        data.Main.Temp,
		Description: data.Weather[0].Description,
	}, nil
}
