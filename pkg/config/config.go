package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Wallet WalletConfig `mapstructure:"wallet"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type WalletConfig struct {
	Language    string `mapstructure:"language"`     // 默认助记词语言（规范名称）
	WordlistDir string `mapstructure:"wordlist_dir"` // 额外词表目录，可覆盖内置词表
	Testnet     bool   `mapstructure:"testnet"`
	Passphrase  string `mapstructure:"passphrase"` // 通常通过环境变量 WALLET_PASSPHRASE 传入
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// 环境变量设置
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: Config file not found, using defaults and environment variables")
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")

	viper.SetDefault("wallet.language", "english")
	viper.SetDefault("wallet.wordlist_dir", "")
	viper.SetDefault("wallet.testnet", false)
}
