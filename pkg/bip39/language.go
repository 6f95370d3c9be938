package bip39

import "fmt"

// Language 表示 BIP-39 助记词支持的语言。
// 零值 LanguageUnset 是显式的"未指定"哨兵，任何需要词表的操作
// 遇到它都会返回 ErrUnsupportedLanguage，而不是悄悄回退到默认语言。
type Language int

const (
	LanguageUnset Language = iota
	English
	ChineseSimplified
	ChineseTraditional
	Czech
	French
	Italian
	Japanese
	Korean
	Portuguese
	Russian
	Spanish
	Turkish
)

// 规范名称同时是词表资源的键（见 pkg/bip39/wordlist）。
var languageNames = map[Language]string{
	English:            "english",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
	Czech:              "czech",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Portuguese:         "portuguese",
	Russian:            "russian",
	Spanish:            "spanish",
	Turkish:            "turkish",
}

// Languages 返回所有受支持的语言，顺序固定。
func Languages() []Language {
	return []Language{
		English, ChineseSimplified, ChineseTraditional, Czech, French,
		Italian, Japanese, Korean, Portuguese, Russian, Spanish, Turkish,
	}
}

// Supported 判断 l 是否为受支持的具体语言。
func (l Language) Supported() bool {
	_, ok := languageNames[l]
	return ok
}

// String 返回语言的规范名称，未指定时返回 "unset"。
func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unset"
}

// Delimiter 返回该语言拼接助记词时使用的分隔符。
// 日语使用全角空格 (U+3000)，其余语言使用普通空格 (U+0020)。
func (l Language) Delimiter() string {
	if l == Japanese {
		return "　"
	}
	return " "
}

// ParseLanguage 将规范名称解析为 Language。
func ParseLanguage(name string) (Language, error) {
	for lang, n := range languageNames {
		if n == name {
			return lang, nil
		}
	}
	return LanguageUnset, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
}
