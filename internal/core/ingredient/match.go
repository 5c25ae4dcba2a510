package ingredient

import (
	"strings"
)

// NormalizeKey 產生比對鍵：轉小寫、去除英數以外字元、去掉一個結尾的 s
func NormalizeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.TrimSuffix(b.String(), "s")
}

// Matcher 判斷兩個食材名稱是否視為同一項。
// 抽成介面讓之後可以換更嚴格的比對策略而不動呼叫端。
type Matcher interface {
	Matches(a, b string) bool
}

// SubstringMatcher 預設比對：鍵相等或互為非空子字串。
// 刻意寬鬆，"egg" 會比中 "eggplant"；呼叫端必須容忍過度比中。
type SubstringMatcher struct{}

// Matches 實現 Matcher 介面
func (SubstringMatcher) Matches(a, b string) bool {
	ka := NormalizeKey(a)
	kb := NormalizeKey(b)

	if ka == kb {
		return true
	}
	if ka == "" || kb == "" {
		return false
	}
	return strings.Contains(ka, kb) || strings.Contains(kb, ka)
}
