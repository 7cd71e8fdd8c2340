// Package validate — разбор «сырых» текстовых полей анкеты.
// Все функции безопасные: вместо паники возвращают признак успеха.
package validate

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"dietbot/calc"
)

// Currencies — поддерживаемые коды валют конвертера.
var Currencies = []string{"USD", "EUR", "RUB", "GBP", "CNY", "KZT"}

// videoHosts — разрешённые домены для скачивания видео (включая короткие ссылки).
var videoHosts = []string{"tiktok.com", "instagram.com"}

// Number разбирает число из пользовательского ввода.
// Запятая принимается как десятичный разделитель. Значение должно быть
// конечным и строго положительным (рост/вес/возраст/сумма).
func Number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// Gender сопоставляет русскую подпись кнопки с полом.
func Gender(s string) (calc.Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "мужчина":
		return calc.Male, true
	case "женщина":
		return calc.Female, true
	}
	return "", false
}

// Activity переводит пункт меню "1".."5" в коэффициент активности.
func Activity(s string) (float64, bool) {
	v, ok := calc.Activity[strings.TrimSpace(s)]
	return v, ok
}

// Currency нормализует код валюты и проверяет, что он поддерживается.
func Currency(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range Currencies {
		if c == code {
			return code, true
		}
	}
	return "", false
}

// VideoURL проверяет ссылку: схема http/https и домен из списка разрешённых.
func VideoURL(s string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	host := strings.ToLower(u.Hostname())
	for _, allowed := range videoHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return u, true
		}
	}
	return nil, false
}
