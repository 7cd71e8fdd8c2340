package bot

import "strings"

type flow int

const (
	flowUnknown flow = iota
	flowCalories
	flowVideo
	flowCurrency
	flowWeather
	flowInfo
	flowFeedback
)

// menuRoutes — порядок фиксированный, срабатывает первое совпадение.
var menuRoutes = []struct {
	stem string
	flow flow
}{
	{"калори", flowCalories},
	{"видео", flowVideo},
	{"ссылк", flowVideo},
	{"валют", flowCurrency},
	{"конверт", flowCurrency},
	{"погод", flowWeather},
	{"информ", flowInfo},
	{"связ", flowFeedback},
	{"отзыв", flowFeedback},
}

// route классифицирует текст из главного меню по вхождению ключевой основы.
func route(text string) flow {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, r := range menuRoutes {
		if strings.Contains(text, r.stem) {
			return r.flow
		}
	}
	return flowUnknown
}
