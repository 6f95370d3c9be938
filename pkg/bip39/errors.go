package bip39

import "errors"

// 错误分类是封闭的：每个失败原因对应一个哨兵错误，
// 调用方用 errors.Is 判断具体类型。除 Check 以外不会吞掉任何错误。
var (
	// ErrInvalidEntropy 表示熵长度不在 {16,20,24,28,32} 字节之内。
	ErrInvalidEntropy = errors.New("熵长度必须为 16/20/24/28/32 字节")
	// ErrInvalidWordCount 表示单词数不在 {12,15,18,21,24} 之内。
	ErrInvalidWordCount = errors.New("单词数必须为 12/15/18/21/24")
	// ErrWordNotFound 表示某个单词不在当前语言的词表中。
	ErrWordNotFound = errors.New("单词不在词表中")
	// ErrFailedChecksum 表示解码出的校验位与熵重新计算的结果不一致。
	ErrFailedChecksum = errors.New("助记词校验失败")
	// ErrInvalidWordlistLength 表示词表不是恰好 2048 个单词。
	ErrInvalidWordlistLength = errors.New("词表长度必须为 2048")
	// ErrUnsupportedLanguage 表示使用了未指定或不支持的语言。
	ErrUnsupportedLanguage = errors.New("不支持的语言")
	// ErrLanguageNotDetected 表示语言识别收敛到零个或多个候选。
	ErrLanguageNotDetected = errors.New("无法识别助记词语言")
)
