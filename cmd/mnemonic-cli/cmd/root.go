package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mnemonic-core/pkg/bip39"
	"mnemonic-core/pkg/bip39/wordlist"
	"mnemonic-core/pkg/config"
	"mnemonic-core/pkg/logger"
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "mnemonic-cli",
	Short: "BIP-39 助记词命令行工具",
	Long: `一个用 Go 语言编写的 BIP-39 助记词工具。
支持生成/恢复助记词、派生种子与 BIP-32 主密钥、
自动识别助记词语言以及单词前缀补全。`,
	// 错误统一在 Execute 里打印并映射退出码
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.Init(config.Global.App.Env)
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitCode(err))
	}
}

// exitCode 将核心错误类型映射为进程退出码，方便脚本判断失败原因
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, bip39.ErrFailedChecksum):
		return 2
	case errors.Is(err, bip39.ErrWordNotFound):
		return 3
	case errors.Is(err, bip39.ErrLanguageNotDetected):
		return 4
	case errors.Is(err, bip39.ErrInvalidEntropy), errors.Is(err, bip39.ErrInvalidWordCount):
		return 5
	default:
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().String("wordlist-dir", "", "额外词表目录 (每个语言一个 <name>.txt)")
	rootCmd.PersistentFlags().String("language", "", "助记词语言 (默认取配置 wallet.language)")
}

// newService 根据配置与全局标志构造助记词服务
func newService(cmd *cobra.Command) *bip39.Service {
	dir, _ := cmd.Flags().GetString("wordlist-dir")
	if dir == "" {
		dir = config.Global.Wallet.WordlistDir
	}
	if dir == "" {
		return bip39.NewService(nil)
	}
	// 目录词表优先于内置词表
	registry := wordlist.NewRegistry(wordlist.NewDir(dir), wordlist.Builtin())
	return bip39.NewService(registry)
}

// activeLanguage 解析 --language 标志或配置中的默认语言
func activeLanguage(cmd *cobra.Command) (bip39.Language, error) {
	name, _ := cmd.Flags().GetString("language")
	if name == "" {
		name = config.Global.Wallet.Language
	}
	return bip39.ParseLanguage(name)
}
