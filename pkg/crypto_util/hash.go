package crypto_util

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
)

// SHA256 计算输入的 SHA256 哈希值。
func SHA256(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// DoubleSHA256 计算两次 SHA256。Base58Check 的校验和取该结果的前 4 字节。
func DoubleSHA256(data []byte) []byte {
	return SHA256(SHA256(data))
}

// HMACSHA512 以 key 为密钥计算 message 的 HMAC-SHA512。
func HMACSHA512(key, message []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
