package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream property-management system.
	PMSBaseURL string `mapstructure:"PMS_BASE_URL"`

	// Payment provider configuration.
	PaymentProvider   string `mapstructure:"PAYMENT_PROVIDER"`
	PaystackPublicKey string `mapstructure:"PAYSTACK_PUBLIC_KEY"`
	PaystackSecretKey string `mapstructure:"PAYSTACK_SECRET_KEY"`
	PaystackBaseURL   string `mapstructure:"PAYSTACK_BASE_URL"`
	StripeKey         string `mapstructure:"STRIPE_KEY"`
	Currency          string `mapstructure:"CURRENCY"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCredentialsDB   int    `mapstructure:"REDIS_CREDENTIALS_DB"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// MongoDB (payment transaction audit trail).
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Kafka booking events.
	KafkaBrokers      string `mapstructure:"KAFKA_BROKERS"`
	KafkaBookingTopic string `mapstructure:"KAFKA_BOOKING_TOPIC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("PMS_BASE_URL", "http://localhost:9090/api")
	viper.SetDefault("PAYMENT_PROVIDER", "paystack")
	viper.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	viper.SetDefault("CURRENCY", "NGN")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CREDENTIALS_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_BOOKING_TOPIC", "premierlodge.bookings")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
