package bip39

import (
	"bytes"
	"encoding/hex"
	"testing"

	tsbip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

func TestNewSeed_Vector(t *testing.T) {
	// 已知的测试向量 (Test Vector)
	// 助记词: "abandon" x11 + "about"，口令: ""
	expected := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	seed := NewSeed(zeroVectorPhrase, "")
	if got := hex.EncodeToString(seed); got != expected {
		t.Errorf("Seed 生成不匹配。\n预期: %s\n实际: %s", expected, got)
	}
}

func TestNewSeed_TrezorVector(t *testing.T) {
	// 同一助记词，口令 "TREZOR"（BIP-39 参考向量的约定口令）
	expected := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
	seed := NewSeed(zeroVectorPhrase, "TREZOR")
	if got := hex.EncodeToString(seed); got != expected {
		t.Errorf("Seed 生成不匹配。\n预期: %s\n实际: %s", expected, got)
	}
}

func TestNewSeed_Deterministic(t *testing.T) {
	a := NewSeed(zeroVectorPhrase, "passphrase")
	b := NewSeed(zeroVectorPhrase, "passphrase")
	if !bytes.Equal(a, b) {
		t.Error("相同输入产生了不同的种子")
	}
	if len(a) != SeedSize {
		t.Errorf("种子长度 = %d, 期望 %d", len(a), SeedSize)
	}
}

// NFC/NFD/NFKC/NFKD 四种归一化形式的同一逻辑输入必须得到相同种子
func TestNewSeed_NormalizationEquivalence(t *testing.T) {
	passphrase := "passé voilà" // 含组合字符的口令
	forms := []norm.Form{norm.NFC, norm.NFD, norm.NFKC, norm.NFKD}

	want := NewSeed(zeroVectorPhrase, passphrase)
	for _, form := range forms {
		got := NewSeed(form.String(zeroVectorPhrase), form.String(passphrase))
		if !bytes.Equal(got, want) {
			t.Errorf("归一化形式 %v 产生了不同的种子", form)
		}
	}
}

func TestNewSeed_CrossCheckReference(t *testing.T) {
	for _, passphrase := range []string{"", "TREZOR", "口令"} {
		want := tsbip39.NewSeed(zeroVectorPhrase, passphrase)
		got := NewSeed(zeroVectorPhrase, passphrase)
		if !bytes.Equal(got, want) {
			t.Errorf("口令 %q: 与参考实现结果不一致", passphrase)
		}
	}
}
