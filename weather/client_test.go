package weather

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Москва", "Moscow,ru", true},
		{"  ПОДОЛЬСК ", "Podolsk,ru", true},
		{"московская область", "Moscow,ru", true},
		{"Луганск", "Luhansk,ua", true},
		{"Париж", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Resolve(%q) = (%q, %v), ожидали (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
