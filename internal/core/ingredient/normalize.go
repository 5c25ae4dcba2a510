// Package ingredient 提供食材名稱的拼寫修正、多語翻譯與比對鍵正規化。
package ingredient

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Processed 正規化結果
type Processed struct {
	DisplayName   string // 顯示名稱，翻譯過的會是 "English (Foreign)"
	EnglishName   string // Title-case 英文名稱，用於比對
	OriginalInput string // 去除前後空白的原始輸入
}

// Normalize 處理食材名稱：
// 1. 整串比對拼寫修正表
// 2. 整串比對翻譯表（用原始小寫與修正後字串各比一次）
// 3. Title-case 產生顯示名稱
// 比對一律是整串相等，不做模糊比對；多字詞的拼寫錯誤必須
// 與表中鍵完全一致才會被修正。
func Normalize(input string) Processed {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	// 先查拼寫修正
	corrected := lower
	for _, e := range SpellingCorrections {
		if lower == e.Key {
			corrected = e.Value
			break
		}
	}

	// 再查翻譯
	englishName := corrected
	foreignName := ""
	for _, e := range Translations {
		if corrected == e.Key || lower == e.Key {
			englishName = e.Value
			foreignName = trimmed
			break
		}
	}

	capitalizedEnglish := titleCase(englishName)

	// 有翻譯且英文與修正後字串不同時，顯示 "English (Foreign)"；
	// 只有拼寫修正時顯示修正後的版本
	displayName := capitalizedEnglish
	if foreignName != "" && englishName != corrected {
		displayName = capitalizedEnglish + " (" + titleCase(foreignName) + ")"
	}

	return Processed{
		DisplayName:   displayName,
		EnglishName:   capitalizedEnglish,
		OriginalInput: trimmed,
	}
}

// Suggestions 回傳自動完成建議，格式為 "english (foreign)"。
// 依翻譯表宣告順序掃描外文鍵與英文值的前綴，最多回傳 limit 筆。
func Suggestions(partial string, limit int) []string {
	lower := strings.ToLower(partial)
	var suggestions []string

	for _, e := range Translations {
		if strings.HasPrefix(e.Key, lower) || strings.HasPrefix(strings.ToLower(e.Value), lower) {
			suggestions = append(suggestions, e.Value+" ("+e.Key+")")
		}
		if len(suggestions) >= limit {
			break
		}
	}

	return suggestions
}

// titleCase 以空格分詞，每個詞首字母大寫、其餘小寫。
// 首字元要整個 rune 處理，不能按位元組切。
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}
