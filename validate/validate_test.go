package validate

import (
	"testing"

	"dietbot/calc"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"180", 180, true},
		{" 75.5 ", 75.5, true},
		{"75,5", 75.5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-10", 0, false},
		{"0", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1e999", 0, false},
	}
	for _, tt := range tests {
		got, ok := Number(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Number(%q) = (%v, %v), ожидали (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGender(t *testing.T) {
	if g, ok := Gender("Мужчина"); !ok || g != calc.Male {
		t.Errorf("Gender(Мужчина) = (%v, %v)", g, ok)
	}
	if g, ok := Gender("  ЖЕНЩИНА "); !ok || g != calc.Female {
		t.Errorf("Gender(ЖЕНЩИНА) = (%v, %v)", g, ok)
	}
	if _, ok := Gender("другое"); ok {
		t.Error("Gender(другое) не должен проходить")
	}
}

func TestActivity(t *testing.T) {
	if v, ok := Activity("3"); !ok || v != 1.55 {
		t.Errorf("Activity(3) = (%v, %v), ожидали (1.55, true)", v, ok)
	}
	for _, bad := range []string{"0", "6", "два", ""} {
		if _, ok := Activity(bad); ok {
			t.Errorf("Activity(%q) не должен проходить", bad)
		}
	}
}

func TestCurrency(t *testing.T) {
	if c, ok := Currency(" usd "); !ok || c != "USD" {
		t.Errorf("Currency(usd) = (%v, %v)", c, ok)
	}
	if _, ok := Currency("BTC"); ok {
		t.Error("Currency(BTC) не должен проходить")
	}
}

func TestVideoURL(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"https://www.tiktok.com/@user/video/123", true},
		{"https://vm.tiktok.com/ZM123/", true},
		{"https://www.instagram.com/reel/abc/", true},
		{"http://instagram.com/p/xyz", true},
		{"https://youtube.com/watch?v=1", false},
		{"ftp://tiktok.com/video", false},
		{"tiktok.com/video", false},
		{"https://eviltiktok.com/video", false},
		{"просто текст", false},
	}
	for _, tt := range tests {
		_, ok := VideoURL(tt.in)
		if ok != tt.ok {
			t.Errorf("VideoURL(%q) = %v, ожидали %v", tt.in, ok, tt.ok)
		}
	}
}
