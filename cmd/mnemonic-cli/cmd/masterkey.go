package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mnemonic-core/pkg/bip32"
	"mnemonic-core/pkg/bip39"
)

// masterkeyCmd 代表 masterkey 命令
var masterkeyCmd = &cobra.Command{
	Use:   "masterkey <助记词...>",
	Short: "派生 BIP-32 扩展主私钥",
	Long:  `从助记词派生种子，再派生深度 0 的 Base58Check 扩展主私钥 (xprv/tprv)。`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase := strings.Join(args, " ")
		if _, err := newService(cmd).FromPhrase(phrase); err != nil {
			return err
		}

		seed := bip39.NewSeed(phrase, passphraseFlag(cmd))
		masterKey, err := bip32.MasterKeyFromSeed(seed, testnetFlag(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("主私钥 (xprv): %s\n", masterKey)
		return nil
	},
}

func init() {
	masterkeyCmd.Flags().String("passphrase", "", "可选口令 (默认取配置 wallet.passphrase)")
	masterkeyCmd.Flags().Bool("testnet", false, "使用测试网版本前缀")
	rootCmd.AddCommand(masterkeyCmd)
}
