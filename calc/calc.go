package calc

import "math"

// Gender — пол пользователя для формулы Миффлина-Сан Жеора.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Band — категория по ИМТ.
type Band string

const (
	Underweight Band = "underweight"
	Normal      Band = "normal"
	Overweight  Band = "overweight"
	Obese       Band = "obese"
)

// Activity — фиксированные коэффициенты активности (пункты меню 1-5).
var Activity = map[string]float64{
	"1": 1.2,
	"2": 1.375,
	"3": 1.55,
	"4": 1.725,
	"5": 1.9,
}

// Result — итог расчёта: ИМТ, категория и рекомендации по калорийности.
// Recommended содержит одно значение, для ожирения — два (обычный и усиленный дефицит).
type Result struct {
	BMI         float64
	Band        Band
	BMR         int
	TDEE        int
	Recommended []int
}

// Recommend считает ИМТ, базовый обмен (Миффлин-Сан Жеор), суточную норму
// и рекомендуемую калорийность по категории ИМТ. Каждая производная величина
// округляется независимо; TDEE считается от уже округлённого BMR.
func Recommend(heightCm, weightKg, ageYears float64, gender Gender, activity float64) Result {
	heightM := heightCm / 100
	bmi := round2(weightKg / (heightM * heightM))

	var bmr int
	if gender == Male {
		bmr = roundInt(10*weightKg + 6.25*heightCm - 5*ageYears + 5)
	} else {
		bmr = roundInt(10*weightKg + 6.25*heightCm - 5*ageYears - 161)
	}

	tdee := roundInt(float64(bmr) * activity)

	res := Result{BMI: bmi, BMR: bmr, TDEE: tdee}
	switch {
	case bmi < 18.5:
		res.Band = Underweight
		res.Recommended = []int{roundInt(float64(tdee) * 1.15)}
	case bmi <= 24.9:
		res.Band = Normal
		res.Recommended = []int{tdee}
	case bmi >= 25 && bmi <= 29.9:
		res.Band = Overweight
		res.Recommended = []int{roundInt(float64(tdee) * 0.85)}
	default:
		res.Band = Obese
		res.Recommended = []int{roundInt(float64(tdee) * 0.8), roundInt(float64(tdee) * 0.75)}
	}
	return res
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func roundInt(x float64) int {
	return int(math.Round(x))
}
