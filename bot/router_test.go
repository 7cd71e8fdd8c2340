package bot

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		in   string
		want flow
	}{
		{"Рассчитать калории", flowCalories},
		{"🍎 Рассчитать калории", flowCalories},
		{"хочу посчитать КАЛОРИИ", flowCalories},
		{"Скачать видео", flowVideo},
		{"вот ссылка", flowVideo},
		{"Конвертер валют", flowCurrency},
		{"конвертация", flowCurrency},
		{"Погода", flowWeather},
		{"Информация", flowInfo},
		{"Обратная связь", flowFeedback},
		{"оставить отзыв", flowFeedback},
		{"привет", flowUnknown},
		{"", flowUnknown},
	}
	for _, tt := range tests {
		if got := route(tt.in); got != tt.want {
			t.Errorf("route(%q) = %v, ожидали %v", tt.in, got, tt.want)
		}
	}
}

func TestRouteFirstMatchWins(t *testing.T) {
	// «калори» стоит в списке раньше «валют» — побеждает первая основа.
	if got := route("калории и валюта"); got != flowCalories {
		t.Errorf("route = %v, ожидали flowCalories", got)
	}
	// «видео» раньше «погод».
	if got := route("видео про погоду"); got != flowVideo {
		t.Errorf("route = %v, ожидали flowVideo", got)
	}
}
