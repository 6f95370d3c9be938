package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// checkCmd 代表 check 命令
var checkCmd = &cobra.Command{
	Use:   "check <助记词...>",
	Short: "校验助记词是否有效",
	Long:  `布尔谓词：语言无法识别、单词未知、校验失败都视为无效，退出码为 1。`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if newService(cmd).Check(strings.Join(args, " ")) {
			fmt.Println("有效 (valid)")
			return
		}
		fmt.Println("无效 (invalid)")
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
