package bip39

import (
	"fmt"
	"strings"
)

// DetectLanguage 根据（可能不完整的）助记词片段识别语言。
// 先用前缀匹配逐词收敛候选语言；仍有多个候选时，再用"该单词
// 只在某一种候选语言的词表中完整出现"来消歧。收敛到零个或
// 仍然多于一个候选都返回 ErrLanguageNotDetected。
func (s *Service) DetectLanguage(fragment string) (Language, error) {
	tokens := distinctTokens(fragment)
	if len(tokens) == 0 {
		return LanguageUnset, fmt.Errorf("%w: 输入为空", ErrLanguageNotDetected)
	}

	candidates := s.availableLanguages()
	if len(candidates) == 0 {
		return LanguageUnset, fmt.Errorf("%w: 没有可用词表", ErrLanguageNotDetected)
	}

	// 前缀收敛：每个 token 只保留词表中存在该前缀的语言
	for _, token := range tokens {
		var next []Language
		for _, lang := range candidates {
			list, err := s.wordlistFor(lang)
			if err != nil {
				return LanguageUnset, err
			}
			if hasPrefixWord(list, token) {
				next = append(next, lang)
			}
		}
		if len(next) == 0 {
			return LanguageUnset, fmt.Errorf("%w: %q 不属于任何语言", ErrLanguageNotDetected, token)
		}
		candidates = next
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	// 完整单词消歧：某个 token 恰好只在一种候选语言中是完整单词时，
	// 该语言进入结果集。近似的拉丁词表（如英语/法语）靠这一步区分。
	exact := make(map[Language]bool)
	for _, token := range tokens {
		var matched []Language
		for _, lang := range candidates {
			list, err := s.wordlistFor(lang)
			if err != nil {
				return LanguageUnset, err
			}
			if containsWord(list, token) {
				matched = append(matched, lang)
			}
		}
		if len(matched) == 1 {
			exact[matched[0]] = true
		}
	}
	if len(exact) == 1 {
		for lang := range exact {
			return lang, nil
		}
	}
	return LanguageUnset, fmt.Errorf("%w: 候选语言不唯一", ErrLanguageNotDetected)
}

// ExpandWord 在指定语言的词表中补全前缀。
// prefix 本身是完整单词时原样返回；恰好只有一个单词以它开头时
// 返回那个单词；零个或多个匹配时不做猜测，原样返回。
func (s *Service) ExpandWord(lang Language, prefix string) (string, error) {
	list, err := s.wordlistFor(lang)
	if err != nil {
		return "", err
	}
	if containsWord(list, prefix) {
		return prefix, nil
	}
	var match string
	for _, word := range list {
		if strings.HasPrefix(word, prefix) {
			if match != "" {
				return prefix, nil // 多个匹配，放弃补全
			}
			match = word
		}
	}
	if match == "" {
		return prefix, nil
	}
	return match, nil
}

// Expand 对短语中的每个 token 独立做前缀补全，结果用普通空格拼接。
// 这是文本编辑的便利操作，与语言本身的分隔符约定无关。
func (s *Service) Expand(lang Language, phrase string) (string, error) {
	tokens := strings.Split(phrase, " ")
	expanded := make([]string, len(tokens))
	for i, token := range tokens {
		word, err := s.ExpandWord(lang, token)
		if err != nil {
			return "", err
		}
		expanded[i] = word
	}
	return strings.Join(expanded, " "), nil
}

// distinctTokens 归一化并切词，去重但保持出现顺序。
func distinctTokens(fragment string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, token := range splitPhrase(fragment) {
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func hasPrefixWord(list []string, prefix string) bool {
	for _, word := range list {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}

func containsWord(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}
