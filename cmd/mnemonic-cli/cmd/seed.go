package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mnemonic-core/pkg/bip39"
)

// seedCmd 代表 seed 命令
var seedCmd = &cobra.Command{
	Use:   "seed <助记词...>",
	Short: "派生 BIP-39 种子",
	Long:  `对助记词做 PBKDF2-HMAC-SHA512 (2048 轮) 得到 64 字节种子。`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase := strings.Join(args, " ")
		verify, _ := cmd.Flags().GetBool("verify")
		if verify {
			// 种子派生本身不要求助记词有效，按需校验
			if _, err := newService(cmd).FromPhrase(phrase); err != nil {
				return err
			}
		}

		seed := bip39.NewSeed(phrase, passphraseFlag(cmd))
		fmt.Printf("种子 (Seed Hex): %s\n", hex.EncodeToString(seed))
		return nil
	},
}

func init() {
	seedCmd.Flags().String("passphrase", "", "可选口令 (默认取配置 wallet.passphrase)")
	seedCmd.Flags().Bool("verify", true, "派生前先校验助记词")
	rootCmd.AddCommand(seedCmd)
}
