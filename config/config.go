package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Google 服务账号凭证（完整 JSON 字符串）
	GoogleCredentialsJSON string `mapstructure:"GOOGLE_CREDENTIALS_JSON"`

	// 表格配置
	SpreadsheetName string `mapstructure:"SPREADSHEET_NAME"`

	// 页面轮询间隔（秒）
	RefreshSeconds int `mapstructure:"REFRESH_SECONDS"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")
	viper.SetDefault("SPREADSHEET_NAME", "Mood Tracker")
	viper.SetDefault("REFRESH_SECONDS", 30)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if config.GoogleCredentialsJSON == "" {
		err = fmt.Errorf("缺少 GOOGLE_CREDENTIALS_JSON 配置")
	}
	return
}
