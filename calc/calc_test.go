package calc

import "testing"

func TestRecommendNormalMale(t *testing.T) {
	res := Recommend(180, 75, 30, Male, 1.2)
	if res.BMI != 23.15 {
		t.Errorf("BMI = %v, ожидали 23.15", res.BMI)
	}
	if res.Band != Normal {
		t.Errorf("Band = %v, ожидали Normal", res.Band)
	}
	if res.BMR != 1730 {
		t.Errorf("BMR = %d, ожидали 1730", res.BMR)
	}
	if res.TDEE != 2076 {
		t.Errorf("TDEE = %d, ожидали 2076", res.TDEE)
	}
	if len(res.Recommended) != 1 || res.Recommended[0] != 2076 {
		t.Errorf("Recommended = %v, ожидали [2076]", res.Recommended)
	}
}

func TestRecommendNormalFemale(t *testing.T) {
	res := Recommend(180, 75, 30, Female, 1.2)
	if res.BMR != 1564 {
		t.Errorf("BMR = %d, ожидали 1564", res.BMR)
	}
	if res.TDEE != 1877 {
		t.Errorf("TDEE = %d, ожидали 1877", res.TDEE)
	}
	if len(res.Recommended) != 1 || res.Recommended[0] != 1877 {
		t.Errorf("Recommended = %v, ожидали [1877]", res.Recommended)
	}
}

func TestRecommendUnderweight(t *testing.T) {
	res := Recommend(160, 45, 25, Female, 1.55)
	if res.BMI != 17.58 {
		t.Errorf("BMI = %v, ожидали 17.58", res.BMI)
	}
	if res.Band != Underweight {
		t.Errorf("Band = %v, ожидали Underweight", res.Band)
	}
	want := roundInt(float64(res.TDEE) * 1.15)
	if len(res.Recommended) != 1 || res.Recommended[0] != want {
		t.Errorf("Recommended = %v, ожидали [%d]", res.Recommended, want)
	}
}

func TestRecommendObese(t *testing.T) {
	res := Recommend(170, 95, 40, Male, 1.9)
	if res.BMI < 30 {
		t.Fatalf("BMI = %v, ожидали >= 30", res.BMI)
	}
	if res.Band != Obese {
		t.Errorf("Band = %v, ожидали Obese", res.Band)
	}
	if len(res.Recommended) != 2 {
		t.Fatalf("Recommended = %v, ожидали два значения", res.Recommended)
	}
	if res.Recommended[1] >= res.Recommended[0] {
		t.Errorf("второе значение (%d) должно быть строго меньше первого (%d)",
			res.Recommended[1], res.Recommended[0])
	}
}

func TestRecommendBandOrder(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     Band
	}{
		{"недостаток", 180, 55, Underweight},
		{"норма", 180, 70, Normal},
		{"избыточный", 180, 88, Overweight},
		{"ожирение", 180, 105, Obese},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Recommend(tt.heightCm, tt.weightKg, 30, Male, 1.2)
			if res.Band != tt.want {
				t.Errorf("Band = %v, ожидали %v (BMI %v)", res.Band, tt.want, res.BMI)
			}
		})
	}
}
