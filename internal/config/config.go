package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server
	NotificationService
	Payment
	Log
}

type Server struct {
	Port            string
	ShutdownTimeout time.Duration
}

type NotificationService struct {
	URL      string
	Timeout  time.Duration // zero means the call is never cut short
	MaxConns int
}

type Payment struct {
	ProcessingDelay time.Duration
}

type Log struct {
	Level  string
	Format string
}

// LoadDotEnv loads a .env file from the working directory when one
// exists. Variables already set in the environment win.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func NewConfig() *Config {
	return &Config{
		Server: Server{
			Port:            getEnvString("SERVER_PORT", "8080"),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		NotificationService: NotificationService{
			URL:      strings.TrimRight(getEnvString("NOTIFICATION_SERVICE_URL", "http://notification-service:8080"), "/"),
			Timeout:  getEnvDuration("NOTIFICATION_TIMEOUT", 0),
			MaxConns: getEnvInt("NOTIFICATION_MAX_CONNS", 512),
		},
		Payment: Payment{
			ProcessingDelay: getEnvDuration("PAYMENT_PROCESSING_DELAY", 10*time.Millisecond),
		},
		Log: Log{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "text"),
		},
	}
}

func getEnvString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration < 0 {
		return defaultValue
	}

	return duration
}
