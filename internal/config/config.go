package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	BcryptCost                    int    `mapstructure:"BCRYPT_COST"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "eventbook.db")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("ENABLE_CORS", true)

	// JWT_SECRET has no default on purpose; main refuses to start
	// without it.
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
