package bip39

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	service := NewService(nil)

	// "about" 只在英语词表中是完整单词
	lang, err := service.DetectLanguage("abandon about")
	assert.NoError(t, err)
	assert.Equal(t, English, lang)

	// "aboutir" 只在法语词表中出现，靠它与英语区分
	lang, err = service.DetectLanguage("abandon aboutir")
	assert.NoError(t, err)
	assert.Equal(t, French, lang)
}

func TestDetectLanguage_Ambiguous(t *testing.T) {
	service := NewService(nil)

	// "jaguar" 同时是英语和西班牙语的完整单词，无法消歧
	_, err := service.DetectLanguage("jaguar jaguar")
	assert.True(t, errors.Is(err, ErrLanguageNotDetected), "实际错误: %v", err)
}

func TestDetectLanguage_NoCandidate(t *testing.T) {
	service := NewService(nil)

	// 没有任何语言包含以 "xxxxxxx" 开头的单词
	_, err := service.DetectLanguage("jaguar xxxxxxx")
	assert.True(t, errors.Is(err, ErrLanguageNotDetected), "实际错误: %v", err)
}

func TestDetectLanguage_EmptyInput(t *testing.T) {
	service := NewService(nil)
	_, err := service.DetectLanguage("   ")
	assert.True(t, errors.Is(err, ErrLanguageNotDetected), "实际错误: %v", err)
}

func TestDetectLanguage_PrefixFragments(t *testing.T) {
	service := NewService(nil)

	// 前缀片段也参与收敛: "abou" 只保留英语/法语候选，
	// 完整单词 "zoo" 再把结果定为英语
	lang, err := service.DetectLanguage("abandon abou zoo")
	assert.NoError(t, err)
	assert.Equal(t, English, lang)
}

func TestExpandWord(t *testing.T) {
	service := NewService(nil)

	// 唯一前缀补全
	got, err := service.ExpandWord(English, "acti")
	assert.NoError(t, err)
	assert.Equal(t, "action", got)

	// 多个匹配 (access, account, ...) 不做猜测
	got, err = service.ExpandWord(English, "acc")
	assert.NoError(t, err)
	assert.Equal(t, "acc", got)

	// 已是完整单词，原样返回
	got, err = service.ExpandWord(English, "access")
	assert.NoError(t, err)
	assert.Equal(t, "access", got)

	// 没有任何匹配，原样返回
	got, err = service.ExpandWord(English, "zzz")
	assert.NoError(t, err)
	assert.Equal(t, "zzz", got)
}

func TestExpandWord_UnsupportedLanguage(t *testing.T) {
	service := NewService(nil)
	_, err := service.ExpandWord(LanguageUnset, "acti")
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage), "实际错误: %v", err)
}

func TestExpand(t *testing.T) {
	service := NewService(nil)

	got, err := service.Expand(English, "acti acc access")
	assert.NoError(t, err)
	assert.Equal(t, "action acc access", got)
}
