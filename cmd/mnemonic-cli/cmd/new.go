package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"mnemonic-core/pkg/bip32"
	"mnemonic-core/pkg/bip39"
	"mnemonic-core/pkg/config"
)

// newCmd 代表 new 命令
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "生成一个新的助记词",
	Long:  `生成一个新的随机 BIP-39 助记词，并显示熵、种子与 BIP-32 主密钥。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service := newService(cmd)
		lang, err := activeLanguage(cmd)
		if err != nil {
			return err
		}

		words, _ := cmd.Flags().GetInt("words")
		entropyHex, _ := cmd.Flags().GetString("entropy")
		passphrase := passphraseFlag(cmd)
		testnet := testnetFlag(cmd)

		var mnemonic *bip39.Mnemonic
		if entropyHex != "" {
			// 显式熵优先于单词数
			entropy, err := hex.DecodeString(entropyHex)
			if err != nil {
				return fmt.Errorf("解析熵失败: %w", err)
			}
			mnemonic, err = service.FromEntropy(lang, entropy)
			if err != nil {
				return err
			}
		} else {
			mnemonic, err = service.Generate(lang, words)
			if err != nil {
				return err
			}
		}

		seed := mnemonic.Seed(passphrase)
		masterKey, err := bip32.MasterKeyFromSeed(seed, testnet)
		if err != nil {
			return err
		}

		fmt.Println("---------------------------------------------------")
		fmt.Printf("语言 (Language): %s\n", mnemonic.Language())
		fmt.Printf("助记词 (Mnemonic): \n%s\n", mnemonic.Phrase())
		fmt.Println("---------------------------------------------------")
		fmt.Printf("熵 (Entropy Hex): %s\n", hex.EncodeToString(mnemonic.Entropy()))
		fmt.Printf("种子 (Seed Hex): %s\n", hex.EncodeToString(seed))
		fmt.Printf("主私钥 (xprv): %s\n", masterKey)
		fmt.Println("---------------------------------------------------")
		fmt.Println("请妥善保管您的助记词！任何拥有助记词的人都可以派生出该钱包的主密钥。")
		return nil
	},
}

func init() {
	newCmd.Flags().Int("words", 24, "单词数 (12/15/18/21/24)")
	newCmd.Flags().String("entropy", "", "十六进制熵，指定时优先于 --words")
	newCmd.Flags().String("passphrase", "", "可选口令 (默认取配置 wallet.passphrase)")
	newCmd.Flags().Bool("testnet", false, "使用测试网版本前缀")
	rootCmd.AddCommand(newCmd)
}

func passphraseFlag(cmd *cobra.Command) string {
	passphrase, _ := cmd.Flags().GetString("passphrase")
	if passphrase == "" {
		passphrase = config.Global.Wallet.Passphrase
	}
	return passphrase
}

func testnetFlag(cmd *cobra.Command) bool {
	testnet, _ := cmd.Flags().GetBool("testnet")
	return testnet || config.Global.Wallet.Testnet
}
