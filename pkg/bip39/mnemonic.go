package bip39

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"mnemonic-core/pkg/bip39/wordlist"
	"mnemonic-core/pkg/safe_random"
)

// Service 提供助记词的生成、恢复、验证与语言识别。
// 词表通过 wordlist.Registry 注入，随机源取自 safe_random.Reader，
// 两者都可以在测试中替换。Service 本身无可变状态，可并发使用。
type Service struct {
	registry *wordlist.Registry
}

// NewService 创建助记词服务。registry 为 nil 时使用内置词表。
func NewService(registry *wordlist.Registry) *Service {
	if registry == nil {
		registry = wordlist.Default()
	}
	return &Service{registry: registry}
}

// StrengthForWordCount 返回单词数对应的熵强度（位）。
// 固定映射：12↔128, 15↔160, 18↔192, 21↔224, 24↔256。
func StrengthForWordCount(count int) (int, error) {
	if err := validateWordCount(count); err != nil {
		return 0, err
	}
	return count / 3 * 32, nil
}

// Generate 用安全随机熵生成指定语言、指定单词数的助记词。
func (s *Service) Generate(lang Language, wordCount int) (*Mnemonic, error) {
	strength, err := StrengthForWordCount(wordCount)
	if err != nil {
		return nil, err
	}
	entropy := make([]byte, strength/8)
	if _, err := io.ReadFull(safe_random.Reader, entropy); err != nil {
		return nil, fmt.Errorf("生成熵失败: %w", err)
	}
	return s.FromEntropy(lang, entropy)
}

// FromEntropy 用调用方提供的熵构造助记词。
// 熵长度必须为 16/20/24/28/32 字节，构造后不可变。
func (s *Service) FromEntropy(lang Language, entropy []byte) (*Mnemonic, error) {
	list, err := s.wordlistFor(lang)
	if err != nil {
		return nil, err
	}
	if err := validateEntropy(entropy); err != nil {
		return nil, err
	}
	owned := make([]byte, len(entropy))
	copy(owned, entropy)
	return &Mnemonic{
		language:  lang,
		list:      list,
		delimiter: lang.Delimiter(),
		entropy:   owned,
	}, nil
}

// FromPhrase 从已有助记词短语恢复：先自动识别语言，
// 再按该语言的词表解码并校验。错误原样向上传递。
func (s *Service) FromPhrase(phrase string) (*Mnemonic, error) {
	lang, err := s.DetectLanguage(phrase)
	if err != nil {
		return nil, err
	}
	list, err := s.wordlistFor(lang)
	if err != nil {
		return nil, err
	}
	entropy, err := WordsToEntropy(splitPhrase(phrase), list)
	if err != nil {
		return nil, err
	}
	return s.FromEntropy(lang, entropy)
}

// Check 判断短语是否为有效助记词（自动识别语言）。
// 布尔谓词：识别失败、未知单词、校验失败统统返回 false。
func (s *Service) Check(phrase string) bool {
	_, err := s.FromPhrase(phrase)
	return err == nil
}

// wordlistFor 加载并校验指定语言的词表。
func (s *Service) wordlistFor(lang Language) ([]string, error) {
	if !lang.Supported() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLanguage, lang)
	}
	list, err := s.registry.Words(lang.String())
	if err != nil {
		if errors.Is(err, wordlist.ErrInvalidLength) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWordlistLength, err)
		}
		return nil, err
	}
	return list, nil
}

// availableLanguages 返回词表实际可用的语言，顺序固定。
func (s *Service) availableLanguages() []Language {
	available := make(map[string]bool)
	for _, name := range s.registry.Available() {
		available[name] = true
	}
	var langs []Language
	for _, lang := range Languages() {
		if available[lang.String()] {
			langs = append(langs, lang)
		}
	}
	return langs
}

// Mnemonic 是经过校验的助记词值对象：{语言, 词表, 分隔符, 熵}。
// 短语是由熵派生的视图，不冗余存储，避免两者出现分歧。
type Mnemonic struct {
	language  Language
	list      []string
	delimiter string
	entropy   []byte
}

// Language 返回助记词的语言。
func (m *Mnemonic) Language() Language {
	return m.language
}

// Delimiter 返回拼接单词时使用的分隔符。
func (m *Mnemonic) Delimiter() string {
	return m.delimiter
}

// Entropy 返回熵的拷贝。
func (m *Mnemonic) Entropy() []byte {
	entropy := make([]byte, len(m.entropy))
	copy(entropy, m.entropy)
	return entropy
}

// Words 返回由熵派生的单词序列。
func (m *Mnemonic) Words() []string {
	// 构造时已校验过熵与词表，这里不会失败
	words, err := EntropyToWords(m.entropy, m.list)
	if err != nil {
		panic(fmt.Sprintf("bip39: 已校验的助记词编码失败: %v", err))
	}
	return words
}

// Phrase 返回用语言分隔符拼接的助记词短语。
func (m *Mnemonic) Phrase() string {
	return strings.Join(m.Words(), m.delimiter)
}

// Seed 用可选口令派生 64 字节种子。
func (m *Mnemonic) Seed(passphrase string) []byte {
	return NewSeed(m.Phrase(), passphrase)
}
