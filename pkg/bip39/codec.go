// Package bip39 实现 BIP-39 助记词的编解码、种子派生与语言识别。
// 参考: https://github.com/bitcoin/bips/blob/master/bip-0039.mediawiki
package bip39

import (
	"fmt"
	"math/big"

	"mnemonic-core/pkg/crypto_util"
)

var (
	last11BitsMask      = big.NewInt(2047)
	shift11BitsDivider  = big.NewInt(2048)
	bigOne              = big.NewInt(1)
	bigTwo              = big.NewInt(2)
	validEntropyLengths = []int{16, 20, 24, 28, 32}
	validWordCounts     = []int{12, 15, 18, 21, 24}
)

func validateEntropy(entropy []byte) error {
	for _, n := range validEntropyLengths {
		if len(entropy) == n {
			return nil
		}
	}
	return fmt.Errorf("%w: 实际 %d 字节", ErrInvalidEntropy, len(entropy))
}

func validateWordCount(count int) error {
	for _, n := range validWordCounts {
		if count == n {
			return nil
		}
	}
	return fmt.Errorf("%w: 实际 %d", ErrInvalidWordCount, count)
}

// addChecksum 把熵与校验位拼成一个大整数。
// 校验位取 SHA-256(熵) 第一个字节的高 len(entropy)/4 位。
func addChecksum(entropy []byte) *big.Int {
	firstChecksumByte := crypto_util.SHA256(entropy)[0]
	checksumBitLength := len(entropy) / 4

	v := new(big.Int).SetBytes(entropy)
	for i := 0; i < checksumBitLength; i++ {
		// 左移一位后按位填入校验位
		v.Mul(v, bigTwo)
		if firstChecksumByte&(1<<(7-i)) != 0 {
			v.Or(v, bigOne)
		}
	}
	return v
}

// padByteSlice 在高位补零到指定长度。大整数转字节时会丢掉前导零，
// 而 BIP-39 的校验对前导零敏感，必须补齐。
func padByteSlice(slice []byte, length int) []byte {
	offset := length - len(slice)
	if offset <= 0 {
		return slice
	}
	padded := make([]byte, length)
	copy(padded[offset:], slice)
	return padded
}

// EntropyToWords 按 BIP-39 把熵编码为助记词序列：
// 熵位串（每字节高位在前）拼接校验位后按 11 位一组切分，
// 每组作为词表索引 (0..2047)。16/20/24/28/32 字节的熵
// 分别产生 12/15/18/21/24 个单词。
func EntropyToWords(entropy []byte, list []string) ([]string, error) {
	if err := validateEntropy(entropy); err != nil {
		return nil, err
	}
	if len(list) != WordlistSize {
		return nil, fmt.Errorf("%w: 实际 %d", ErrInvalidWordlistLength, len(list))
	}

	entropyBits := len(entropy) * 8
	checksumBits := entropyBits / 32
	sentenceLength := (entropyBits + checksumBits) / 11

	checksummed := addChecksum(entropy)
	words := make([]string, sentenceLength)
	idx := big.NewInt(0)
	for i := sentenceLength - 1; i >= 0; i-- {
		// 从低位往高位每次取 11 位
		idx.And(checksummed, last11BitsMask)
		checksummed.Div(checksummed, shift11BitsDivider)
		words[i] = list[idx.Int64()]
	}
	return words, nil
}

// WordsToEntropy 把助记词序列解码回熵并校验 checksum。
// 失败返回 ErrInvalidWordCount / ErrWordNotFound / ErrFailedChecksum。
func WordsToEntropy(words []string, list []string) ([]byte, error) {
	if err := validateWordCount(len(words)); err != nil {
		return nil, err
	}
	if len(list) != WordlistSize {
		return nil, fmt.Errorf("%w: 实际 %d", ErrInvalidWordlistLength, len(list))
	}

	index := make(map[string]int64, len(list))
	for i, word := range list {
		index[word] = int64(i)
	}

	// 把所有 11 位索引拼回一个大整数
	checksummed := big.NewInt(0)
	for _, word := range words {
		i, ok := index[word]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
		}
		checksummed.Mul(checksummed, shift11BitsDivider)
		checksummed.Or(checksummed, big.NewInt(i))
	}

	totalBits := len(words) * 11
	checksumBits := totalBits / 33
	entropyBits := totalBits - checksumBits

	// 右移校验位得到原始熵
	divider := new(big.Int).Lsh(bigOne, uint(checksumBits))
	rawEntropy := new(big.Int).Div(checksummed, divider)
	entropy := padByteSlice(rawEntropy.Bytes(), entropyBits/8)

	// 由熵重新计算校验位，整体比较即可同时覆盖熵与校验
	if addChecksum(entropy).Cmp(checksummed) != 0 {
		return nil, ErrFailedChecksum
	}
	return entropy, nil
}

// Check 判断 phrase 在给定词表下是否为有效助记词。
// 这是一个布尔谓词：长度、未知单词、校验失败统统返回 false，
// 需要具体失败原因的调用方应使用 WordsToEntropy。
func Check(phrase string, list []string) bool {
	_, err := WordsToEntropy(splitPhrase(phrase), list)
	return err == nil
}

// WordlistSize 是 BIP-39 词表的固定长度。
const WordlistSize = 2048
