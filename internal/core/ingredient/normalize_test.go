package ingredient

import (
	"strings"
	"testing"
)

func TestNormalizeSpellingCorrections(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"tumeric", "Turmeric"},
		{"TUMERIC", "Turmeric"},
		{"star enisse", "Star Anise"},
		{"  chiken  ", "Chicken"},
		{"mozerella", "Mozzarella"},
		{"worchester", "Worcestershire Sauce"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got.EnglishName != tc.want {
			t.Errorf("Normalize(%q).EnglishName = %q, want %q", tc.input, got.EnglishName, tc.want)
		}
		if got.DisplayName != tc.want {
			t.Errorf("Normalize(%q).DisplayName = %q, want %q", tc.input, got.DisplayName, tc.want)
		}
	}
}

func TestNormalizeTranslations(t *testing.T) {
	cases := []struct {
		input       string
		wantEnglish string
		wantDisplay string
	}{
		{"bhindi", "Okra", "Okra (Bhindi)"},
		{"Bhindi", "Okra", "Okra (Bhindi)"},
		{"aloo", "Potato", "Potato (Aloo)"},
		{"tomate", "Tomato", "Tomato (Tomate)"},
		{"shimla mirch", "Bell Pepper", "Bell Pepper (Shimla Mirch)"},
		{"doufu", "Tofu", "Tofu (Doufu)"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got.EnglishName != tc.wantEnglish {
			t.Errorf("Normalize(%q).EnglishName = %q, want %q", tc.input, got.EnglishName, tc.wantEnglish)
		}
		if got.DisplayName != tc.wantDisplay {
			t.Errorf("Normalize(%q).DisplayName = %q, want %q", tc.input, got.DisplayName, tc.wantDisplay)
		}
	}
}

// 翻譯名與英文名相同時（如 kimchi、miso）不應出現括號標註。
func TestNormalizeIdentityTranslation(t *testing.T) {
	for _, input := range []string{"kimchi", "miso", "cilantro"} {
		got := Normalize(input)
		if strings.Contains(got.DisplayName, "(") {
			t.Errorf("Normalize(%q).DisplayName = %q, want no foreign annotation", input, got.DisplayName)
		}
	}
}

// 非 ASCII 開頭的詞也要正確大寫，不能變成替換字元
func TestNormalizeMultibyteNames(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"épice", "Épice"},
		{"jalapeño", "Jalapeño"},
		// 無大小寫之分的文字原樣保留
		{"भिंडी", "भिंडी"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got.EnglishName != tc.want {
			t.Errorf("Normalize(%q).EnglishName = %q, want %q", tc.input, got.EnglishName, tc.want)
		}
		if got.DisplayName != tc.want {
			t.Errorf("Normalize(%q).DisplayName = %q, want %q", tc.input, got.DisplayName, tc.want)
		}
	}
}

func TestNormalizePassthrough(t *testing.T) {
	got := Normalize("  dragon fruit ")
	if got.EnglishName != "Dragon Fruit" {
		t.Errorf("EnglishName = %q, want %q", got.EnglishName, "Dragon Fruit")
	}
	if got.OriginalInput != "dragon fruit" {
		t.Errorf("OriginalInput = %q, want %q", got.OriginalInput, "dragon fruit")
	}
}

// 拼寫表的每個鍵都要修正成表中的值（title-case 後）。
func TestNormalizeAllSpellingKeys(t *testing.T) {
	for _, e := range SpellingCorrections {
		got := Normalize(e.Key)
		// 修正結果可能再被翻譯表命中（如 curd → yogurt 不在此列，
		// 但 basil 會被視為外文鍵），所以只驗證沒有被翻譯的條目
		translated := false
		for _, tr := range Translations {
			if tr.Key == e.Value || tr.Key == e.Key {
				translated = true
				break
			}
		}
		if translated {
			continue
		}
		want := titleCase(e.Value)
		if got.EnglishName != want {
			t.Errorf("Normalize(%q).EnglishName = %q, want %q", e.Key, got.EnglishName, want)
		}
	}
}

func TestBuildTableKeepsLastValueAtFirstPosition(t *testing.T) {
	table := buildTable([]Entry{
		{"a", "1"},
		{"b", "2"},
		{"a", "3"},
	})
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	if table[0].Key != "a" || table[0].Value != "3" {
		t.Errorf("table[0] = %+v, want {a 3}", table[0])
	}
	if table[1].Key != "b" || table[1].Value != "2" {
		t.Errorf("table[1] = %+v, want {b 2}", table[1])
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions("bhi", 5)
	if len(got) == 0 {
		t.Fatal("Suggestions(\"bhi\", 5) returned nothing")
	}
	if got[0] != "okra (bhindi)" {
		t.Errorf("first suggestion = %q, want %q", got[0], "okra (bhindi)")
	}

	// 英文值的前綴也要命中
	got = Suggestions("okr", 5)
	if len(got) == 0 || got[0] != "okra (bhindi)" {
		t.Errorf("Suggestions(\"okr\", 5) = %v, want okra (bhindi) first", got)
	}

	// limit 生效
	got = Suggestions("", 3)
	if len(got) != 3 {
		t.Errorf("len(Suggestions(\"\", 3)) = %d, want 3", len(got))
	}
}
