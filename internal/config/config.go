package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port     string
	LogLevel string

	APIBaseURL  string
	HTTPTimeout time.Duration

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	RedisAddress  string
	RedisPassword string
	SessionFile   string
	AdminToken    string

	ExportDir      string
	ExportS3Bucket string
	ExportS3Region string
	ExportS3Prefix string

	Workers             int
	SchedulesPath       string
	LoanLimitMultiplier decimal.Decimal
}

// ProcessEnvironmentVariables reads configuration from the environment, after
// loading a .env file when one exists in the working directory.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:     "9446",
		LogLevel: "info",

		APIBaseURL: "https://api.fieldops-microfinance.co.ke/api",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		SessionFile: ".fieldops/session.json",

		ExportDir:      "./exports",
		ExportS3Region: "af-south-1",
		ExportS3Prefix: "exports",

		Workers:             4,
		SchedulesPath:       "schedules.yaml",
		LoanLimitMultiplier: decimal.NewFromInt(3),
	}

	setString(&env.Port, "PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.APIBaseURL, "FIELDOPS_API_URL")
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.RedisAddress, "REDIS_ADDRESS")
	setString(&env.RedisPassword, "REDIS_PASSWORD")
	setString(&env.SessionFile, "SESSION_FILE")
	setString(&env.AdminToken, "ADMIN_TOKEN")
	setString(&env.ExportDir, "EXPORT_DIR")
	setString(&env.ExportS3Bucket, "EXPORT_S3_BUCKET")
	setString(&env.ExportS3Region, "EXPORT_S3_REGION")
	setString(&env.ExportS3Prefix, "EXPORT_S3_PREFIX")
	setString(&env.SchedulesPath, "SCHEDULES_PATH")

	if v := os.Getenv("HTTP_TIMEOUT"); len(v) != 0 {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		env.HTTPTimeout = timeout
	}

	if v := os.Getenv("EXPORT_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("EXPORT_WORKERS: %w", err)
		}
		env.Workers = workers
	}

	if v := os.Getenv("LOAN_LIMIT_MULTIPLIER"); len(v) != 0 {
		multiplier, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("LOAN_LIMIT_MULTIPLIER: %w", err)
		}
		env.LoanLimitMultiplier = multiplier
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the export ledger.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}
