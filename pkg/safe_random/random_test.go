package safe_random

import (
	"bytes"
	"testing"
)

func TestGenerateRandomBytes(t *testing.T) {
	n := 32
	b, err := GenerateRandomBytes(n)
	if err != nil {
		t.Fatalf("GenerateRandomBytes 失败: %v", err)
	}
	if len(b) != n {
		t.Errorf("GenerateRandomBytes 返回了 %d 字节, 期望 %d", len(b), n)
	}

	// 简单的随机性检查（极不可能全为零）
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("GenerateRandomBytes 返回了全零数据，可能未正确生成随机数")
	}
}

func TestGenerateRandomBytes_InjectableReader(t *testing.T) {
	old := Reader
	defer func() { Reader = old }()

	fixed := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	Reader = bytes.NewReader(fixed)

	b, err := GenerateRandomBytes(len(fixed))
	if err != nil {
		t.Fatalf("GenerateRandomBytes 失败: %v", err)
	}
	if !bytes.Equal(b, fixed) {
		t.Errorf("替换 Reader 后应读取注入的数据, 实际 %v", b)
	}

	// 随机源耗尽时必须报错而不是返回短数据
	if _, err := GenerateRandomBytes(1); err == nil {
		t.Error("随机源耗尽时期望返回错误")
	}
}
