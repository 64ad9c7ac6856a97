package cmd

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the process needs to run: HTTP and database
// settings, notification gateway credentials, and the sweep windows.
type Config struct {
	HTTPPort       string
	JWTSecret      string
	RateLimit      float64
	RateBurst      int
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	FirebaseCreds  string
	SMSEndpoint    string
	SMSAPIKey      string
	SMSSenderName  string
	PushTimeout    time.Duration
	SMSTimeout     time.Duration
	ReminderWindow time.Duration
}

// LoadConfig reads configuration from the environment, with a .env file
// loaded first when present. Every value has a development default except
// the secrets.
func LoadConfig() (Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("RATE_LIMIT", 20.0)
	v.SetDefault("RATE_BURST", 40)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "booking")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SMS_SENDER_NAME", "DigitalTolk")
	v.SetDefault("NOTIFY_PUSH_TIMEOUT", "10s")
	v.SetDefault("NOTIFY_SMS_TIMEOUT", "15s")
	v.SetDefault("REMINDER_WINDOW", "1h")

	return Config{
		HTTPPort:       v.GetString("HTTP_PORT"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RateLimit:      v.GetFloat64("RATE_LIMIT"),
		RateBurst:      v.GetInt("RATE_BURST"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSslMode:      v.GetString("DB_SSLMODE"),
		FirebaseCreds:  v.GetString("FIREBASE_CREDENTIALS_FILE"),
		SMSEndpoint:    v.GetString("SMS_ENDPOINT"),
		SMSAPIKey:      v.GetString("SMS_API_KEY"),
		SMSSenderName:  v.GetString("SMS_SENDER_NAME"),
		PushTimeout:    v.GetDuration("NOTIFY_PUSH_TIMEOUT"),
		SMSTimeout:     v.GetDuration("NOTIFY_SMS_TIMEOUT"),
		ReminderWindow: v.GetDuration("REMINDER_WINDOW"),
	}, nil
}
