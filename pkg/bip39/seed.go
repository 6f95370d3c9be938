package bip39

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize 是派生种子的长度（512 位）。
	SeedSize = 64

	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// normalize 做 Unicode NFKD 兼容分解。BIP-39 要求助记词和口令
// 在参与任何哈希或比较之前先归一化，这也让全角空格统一成普通空格。
func normalize(s string) string {
	return norm.NFKD.String(s)
}

// splitPhrase 归一化后按空白切分出单词序列。
func splitPhrase(phrase string) []string {
	return strings.Fields(normalize(phrase))
}

// NewSeed 从助记词与可选口令派生 64 字节种子：
// PBKDF2-HMAC-SHA512，2048 轮，盐为 "mnemonic" + NFKD(口令)。
// 纯函数，相同输入永远得到相同输出；不需要口令时传 ""。
func NewSeed(phrase, passphrase string) []byte {
	password := []byte(normalize(phrase))
	salt := []byte(seedSaltPrefix + normalize(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}
