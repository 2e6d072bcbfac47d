package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverFile     = "file"
	StoreDriverDynamoDB = "dynamodb"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Generator GeneratorConfig
	AWS       AWSConfig
}

// Load reads the API configuration from the environment. Values from a .env
// file are already present when godotenv/autoload is imported by main.
//
// Each section is processed on its own so variables keep their documented
// names (PORT, not APP_PORT).
func Load() (*Config, error) {
	var cfg Config
	sections := []struct {
		name string
		spec any
	}{
		{"app", &cfg.App},
		{"store", &cfg.Store},
		{"generator", &cfg.Generator},
		{"aws", &cfg.AWS},
	}
	for _, section := range sections {
		if err := envconfig.Process("", section.spec); err != nil {
			return nil, fmt.Errorf("parsing %s config: %w", section.name, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Port      int    `envconfig:"PORT" default:"9998"`
	GinMode   string `envconfig:"GIN_MODE" default:"release"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

type StoreConfig struct {
	Driver            string `envconfig:"STORE_DRIVER" default:"file"`
	CommitmentsFile   string `envconfig:"COMMITMENTS_FILE" default:"./data/commitments.json"`
	TransactionsFile  string `envconfig:"TRANSACTIONS_FILE" default:"./data/transactions.json"`
	CommitmentsTable  string `envconfig:"COMMITMENTS_TABLE" default:"commitments"`
	TransactionsTable string `envconfig:"TRANSACTIONS_TABLE" default:"transactions"`
}

type GeneratorConfig struct {
	Count int    `envconfig:"GENERATE_COUNT" default:"100"`
	Seed  uint64 `envconfig:"GENERATE_SEED" default:"0"`
}

// AWSConfig holds the DynamoDB connection settings. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them.
type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverDynamoDB:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %s or %s)", c.Store.Driver, StoreDriverFile, StoreDriverDynamoDB)
	}
	if c.Generator.Count <= 0 {
		return fmt.Errorf("GENERATE_COUNT must be positive, got %d", c.Generator.Count)
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.App.Port)
	}
	return nil
}

// DashboardConfig configures the terminal dashboard client.
type DashboardConfig struct {
	APIURL    string        `envconfig:"DASHBOARD_API_URL" default:"http://localhost:9998"`
	RedisURL  string        `envconfig:"DASHBOARD_REDIS_URL"`
	Timeout   time.Duration `envconfig:"CLIENT_TIMEOUT" default:"10s"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"console"`
}

func LoadDashboard() (*DashboardConfig, error) {
	var cfg DashboardConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing dashboard config: %w", err)
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("DASHBOARD_API_URL is required")
	}
	return &cfg, nil
}
