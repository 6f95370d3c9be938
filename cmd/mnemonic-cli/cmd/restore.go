package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// restoreCmd 代表 restore 命令
var restoreCmd = &cobra.Command{
	Use:   "restore <助记词...>",
	Short: "从助记词恢复熵",
	Long:  `自动识别助记词语言，校验 checksum 并还原出原始熵。`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := newService(cmd)
		mnemonic, err := service.FromPhrase(strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("语言 (Language): %s\n", mnemonic.Language())
		fmt.Printf("熵 (Entropy Hex): %s\n", hex.EncodeToString(mnemonic.Entropy()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
