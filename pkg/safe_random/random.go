package safe_random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Reader 是全局共享的加密安全随机源，默认为 crypto/rand.Reader。
// 测试可以替换成确定性的源，用完后必须恢复。
var Reader io.Reader = rand.Reader

// GenerateRandomBytes 从 Reader 生成指定长度的安全随机字节切片。
// 如果随机源读取失败，将返回错误。
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("生成随机字节失败: %w", err)
	}
	return b, nil
}
