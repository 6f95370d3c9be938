// Package bip32 实现 BIP-32 深度 0 的扩展主私钥派生。
// 只做种子到主密钥这一步，不做子密钥派生树。
package bip32

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"mnemonic-core/pkg/crypto_util"
)

// SeedLength 是 BIP-39 种子的固定长度。
const SeedLength = 64

// ErrInvalidSeed 表示种子长度不是 64 字节。
var ErrInvalidSeed = errors.New("种子必须为 64 字节")

// masterKeySalt 是 BIP-32 规定的主密钥 HMAC 密钥。
const masterKeySalt = "Bitcoin seed"

// 扩展私钥的网络版本前缀。
var (
	mainnetVersion = [4]byte{0x04, 0x88, 0xAD, 0xE4} // xprv
	testnetVersion = [4]byte{0x04, 0x35, 0x83, 0x94} // tprv
)

// MasterKeyFromSeed 从 64 字节种子派生扩展主私钥并以 Base58Check 编码返回。
// HMAC-SHA512("Bitcoin seed", seed) 的左 32 字节是私钥，右 32 字节是链码；
// 序列化结构为 版本(4) + 深度/父指纹/子索引全零(9) + 链码(32) + 0x00 + 私钥(32)，
// 再追加双重 SHA256 的前 4 字节校验和。testnet 为 true 时使用测试网版本前缀。
func MasterKeyFromSeed(seed []byte, testnet bool) (string, error) {
	if len(seed) != SeedLength {
		return "", fmt.Errorf("%w: 实际 %d 字节", ErrInvalidSeed, len(seed))
	}

	sum := crypto_util.HMACSHA512([]byte(masterKeySalt), seed)
	privateKey, chainCode := sum[:32], sum[32:]

	version := mainnetVersion
	if testnet {
		version = testnetVersion
	}

	buf := make([]byte, 0, 82)
	buf = append(buf, version[:]...)
	buf = append(buf, make([]byte, 9)...) // 深度 0、父指纹 0、子索引 0
	buf = append(buf, chainCode...)
	buf = append(buf, 0x00)
	buf = append(buf, privateKey...)
	buf = append(buf, crypto_util.DoubleSHA256(buf)[:4]...)

	return base58.Encode(buf), nil
}
