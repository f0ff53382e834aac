package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr         string `mapstructure:"LISTEN_ADDR"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	OAuthRedirectURL   string `mapstructure:"OAUTH_REDIRECT_URL"`
	FrontendURL        string `mapstructure:"FRONTEND_URL"`
	BGGSearchBaseURL   string `mapstructure:"BGG_SEARCH_BASE_URL"`
	BGGThingBaseURL    string `mapstructure:"BGG_THING_BASE_URL"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("OAUTH_REDIRECT_URL", "http://localhost:8080/auth/google/callback")
	viper.SetDefault("BGG_SEARCH_BASE_URL", "https://www.boardgamegeek.com/xmlapi")
	viper.SetDefault("BGG_THING_BASE_URL", "https://www.boardgamegeek.com/xmlapi2")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
