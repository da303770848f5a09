package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageFile     = "file"
	StorageDynamoDB = "dynamodb"

	LockMemory = "memory"
	LockRedis  = "redis"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lock     LockConfig     `mapstructure:"lock"`
	Log      LogConfig      `mapstructure:"log"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	DataDir     string `mapstructure:"data_dir"`
	CatalogFile string `mapstructure:"catalog_file"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	OrdersTable     string `mapstructure:"orders_table"`
	ColumnsTable    string `mapstructure:"columns_table"`
	QuotesTable     string `mapstructure:"quotes_table"`
	InvoicesTable   string `mapstructure:"invoices_table"`
	CouponsTable    string `mapstructure:"coupons_table"`
	BundlesTable    string `mapstructure:"bundles_table"`
	PaymentsTable   string `mapstructure:"payments_table"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LockConfig struct {
	Driver string        `mapstructure:"driver"`
	TTL    time.Duration `mapstructure:"ttl"`
	Retry  time.Duration `mapstructure:"retry"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PaymentsConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            string `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

// MockEnabled reports whether payments are approved locally instead of
// calling the provider.
func (p PaymentsConfig) MockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(p.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

var (
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrUnknownLockDriver    = errors.New("unknown lock driver")
)

// Load reads config.yaml from ./configs or the working directory when present,
// then applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageFile, StorageDynamoDB:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.Storage.Driver)
	}

	c.Lock.Driver = strings.ToLower(strings.TrimSpace(c.Lock.Driver))
	if c.Lock.Driver == "" {
		c.Lock.Driver = LockMemory
		if c.Redis.Addr != "" {
			c.Lock.Driver = LockRedis
		}
	}
	switch c.Lock.Driver {
	case LockMemory, LockRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLockDriver, c.Lock.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.catalog_file", "")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.orders_table", "orders")
	v.SetDefault("dynamodb.columns_table", "workflow_columns")
	v.SetDefault("dynamodb.quotes_table", "quotes")
	v.SetDefault("dynamodb.invoices_table", "invoices")
	v.SetDefault("dynamodb.coupons_table", "coupons")
	v.SetDefault("dynamodb.bundles_table", "bundles")
	v.SetDefault("dynamodb.payments_table", "invoice_payments")

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("lock.ttl", 10*time.Second)
	v.SetDefault("lock.retry", 50*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("payments.mock", "")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "GIN_MODE")

	// Storage
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.data_dir", "DATA_DIR")
	v.BindEnv("storage.catalog_file", "CATALOG_FILE")

	// DynamoDB
	v.BindEnv("dynamodb.region", "AWS_REGION")
	v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("dynamodb.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("dynamodb.orders_table", "DYNAMODB_ORDERS_TABLE")
	v.BindEnv("dynamodb.columns_table", "DYNAMODB_COLUMNS_TABLE")
	v.BindEnv("dynamodb.quotes_table", "DYNAMODB_QUOTES_TABLE")
	v.BindEnv("dynamodb.invoices_table", "DYNAMODB_INVOICES_TABLE")
	v.BindEnv("dynamodb.coupons_table", "DYNAMODB_COUPONS_TABLE")
	v.BindEnv("dynamodb.bundles_table", "DYNAMODB_BUNDLES_TABLE")
	v.BindEnv("dynamodb.payments_table", "DYNAMODB_PAYMENTS_TABLE")

	// Redis
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")

	// Lock
	v.BindEnv("lock.driver", "LOCK_DRIVER")
	v.BindEnv("lock.ttl", "LOCK_TTL")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")

	// Payments
	v.BindEnv("payments.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("payments.mock", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	v.BindEnv("payments.test_payer_email", "MERCADOPAGO_TEST_PAYER_EMAIL")
	v.BindEnv("payments.test_payer_user_id", "MERCADOPAGO_TEST_PAYER_USER_ID")
}
