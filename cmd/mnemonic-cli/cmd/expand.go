package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// expandCmd 代表 expand 命令
var expandCmd = &cobra.Command{
	Use:   "expand <单词前缀...>",
	Short: "补全单词前缀",
	Long: `在词表中补全每个 token 的唯一前缀，例如 "acti" 补全为 "action"。
有零个或多个匹配时不做猜测，原样保留。`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := activeLanguage(cmd)
		if err != nil {
			return err
		}
		expanded, err := newService(cmd).Expand(lang, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(expanded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
