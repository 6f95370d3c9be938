package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// detectCmd 代表 detect 命令
var detectCmd = &cobra.Command{
	Use:   "detect <单词或片段...>",
	Short: "识别助记词语言",
	Long:  `根据助记词（允许只给出前缀片段）识别它属于哪种语言。`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := newService(cmd).DetectLanguage(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("语言 (Language): %s\n", lang)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
