package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	App struct {
		Env  string `mapstructure:"env"`
		Port string `mapstructure:"port"`
	} `mapstructure:"app"`

	Store struct {
		Driver      string `mapstructure:"driver"`
		SQLitePath  string `mapstructure:"sqlite_path"`
		PostgresDSN string `mapstructure:"postgres_dsn"`
		Seed        bool   `mapstructure:"seed"`
	} `mapstructure:"store"`

	AWS struct {
		Region           string `mapstructure:"region"`
		AccessKeyID      string `mapstructure:"access_key_id"`
		SecretAccessKey  string `mapstructure:"secret_access_key"`
		DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
		EstimatesTable   string `mapstructure:"estimates_table"`
		CitiesTable      string `mapstructure:"cities_table"`
		MaterialsTable   string `mapstructure:"materials_table"`
	} `mapstructure:"aws"`

	Auth struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"auth"`

	Estimator struct {
		DefaultCity string        `mapstructure:"default_city"`
		CacheSize   int           `mapstructure:"cache_size"`
		CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"estimator"`

	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

// envKeys maps each config key to the environment variable that overrides it.
var envKeys = map[string]string{
	"app.env":                "APP_ENV",
	"app.port":               "HTTP_PORT",
	"store.driver":           "STORE_DRIVER",
	"store.sqlite_path":      "SQLITE_PATH",
	"store.postgres_dsn":     "POSTGRES_DSN",
	"store.seed":             "SEED_REFERENCE_DATA",
	"aws.region":             "AWS_REGION",
	"aws.access_key_id":      "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":  "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":  "DYNAMODB_ENDPOINT",
	"aws.estimates_table":    "ESTIMATES_TABLE",
	"aws.cities_table":       "CITIES_TABLE",
	"aws.materials_table":    "MATERIALS_TABLE",
	"auth.secret":            "JWT_SECRET",
	"auth.ttl":               "JWT_TTL",
	"estimator.default_city": "DEFAULT_CITY",
	"estimator.cache_size":   "RATE_CACHE_SIZE",
	"estimator.cache_ttl":    "RATE_CACHE_TTL",
	"metrics.enabled":        "METRICS_ENABLED",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.port", "8080")
	v.SetDefault("store.driver", StoreDynamoDB)
	v.SetDefault("store.sqlite_path", "estimator.db")
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("store.seed", true)
	v.SetDefault("aws.region", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")
	v.SetDefault("aws.estimates_table", "estimates")
	v.SetDefault("aws.cities_table", "cities")
	v.SetDefault("aws.materials_table", "materials")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.ttl", 24*time.Hour)
	v.SetDefault("estimator.default_city", "Karachi")
	v.SetDefault("estimator.cache_size", 256)
	v.SetDefault("estimator.cache_ttl", time.Minute)
	v.SetDefault("metrics.enabled", true)
}

// Load reads defaults, then the optional file named by CONFIG_FILE, then the
// environment.
func Load() (Config, error) {
	return load(os.Getenv("CONFIG_FILE"))
}

func load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDynamoDB, StoreSQLite:
	case StorePostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for store driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Estimator.CacheSize < 0 {
		return fmt.Errorf("RATE_CACHE_SIZE must not be negative")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.App.Port, ":")
}
