package ingredient

import (
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Tomatoes", "tomatoe"},
		{"tomato", "tomato"},
		{"Rice Noodles", "ricenoodle"},
		{"Bell Pepper", "bellpepper"},
		{"Eggs", "egg"},
		{"black-eyed peas", "blackeyedpea"},
		{"  Olive Oil!  ", "oliveoil"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeKey(tc.input); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// 結尾只去一個 s："Tomatoes" 變 "tomatoe"，與 "tomato" 的鍵不同，
// 但子字串比對仍會把兩者視為同一項。
func TestTomatoesMatchesTomato(t *testing.T) {
	var m SubstringMatcher
	if !m.Matches("Tomatoes", "tomato") {
		t.Error("Matches(Tomatoes, tomato) = false, want true")
	}
}

func TestSubstringMatcher(t *testing.T) {
	var m SubstringMatcher
	cases := []struct {
		a, b string
		want bool
	}{
		{"Garlic", "garlic", true},
		{"garlic", "Garlic Cloves", true},
		// 已知的寬鬆比對誤判，屬設計取捨，行為要保留
		{"egg", "eggplant", true},
		{"chicken", "beef", false},
		{"", "garlic", false},
		{"", "", true},
	}
	for _, tc := range cases {
		if got := m.Matches(tc.a, tc.b); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
