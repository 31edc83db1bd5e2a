package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
	Chat struct {
		MaxPayloadBytes int64 // inbound frame cap, bounds image/voice messages
		ReportThreshold int64 // reports against one origin before auto-ban
	}
}

var C Config

func Load() {
	viper.SetConfigFile("config/config.yaml")

	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("jwt.secret", "dev-only-secret")
	viper.SetDefault("chat.maxpayloadbytes", 10*1024*1024)
	viper.SetDefault("chat.reportthreshold", 3)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file, using defaults: %v", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
