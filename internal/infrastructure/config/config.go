package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Data   DataConfig   `mapstructure:"data"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// DataConfig locates the JSON collection files on disk
type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	UsersFile    string `mapstructure:"users_file"`
	OrdersFile   string `mapstructure:"orders_file"`
	ContactsFile string `mapstructure:"contacts_file"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Filename string `mapstructure:"filename"`
}

// Load loads configuration from various sources
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	// Configure viper
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "backoffice")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")

	// Data defaults
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.users_file", "users.json")
	viper.SetDefault("data.orders_file", "orders.json")
	viper.SetDefault("data.contacts_file", "contacts.json")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output", "stderr")
	viper.SetDefault("logger.filename", "")
}

func bindEnvVars() {
	// App
	viper.BindEnv("app.name", "APP_NAME")
	viper.BindEnv("app.version", "APP_VERSION")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")

	// Data
	viper.BindEnv("data.dir", "DATA_DIR")
	viper.BindEnv("data.users_file", "DATA_USERS_FILE")
	viper.BindEnv("data.orders_file", "DATA_ORDERS_FILE")
	viper.BindEnv("data.contacts_file", "DATA_CONTACTS_FILE")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.format", "LOG_FORMAT")
	viper.BindEnv("logger.output", "LOG_OUTPUT")
	viper.BindEnv("logger.filename", "LOG_FILENAME")
}

func validateConfig(cfg *Config) error {
	if cfg.Data.Dir == "" {
		return fmt.Errorf("data directory is required")
	}

	if cfg.Data.UsersFile == "" || cfg.Data.OrdersFile == "" || cfg.Data.ContactsFile == "" {
		return fmt.Errorf("all collection file names are required")
	}

	switch cfg.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger format must be json or console, got %q", cfg.Logger.Format)
	}

	switch cfg.Logger.Output {
	case "stdout", "stderr", "file":
	default:
		return fmt.Errorf("logger output must be stdout, stderr or file, got %q", cfg.Logger.Output)
	}

	if cfg.Logger.Output == "file" && cfg.Logger.Filename == "" {
		return fmt.Errorf("logger filename is required when output is file")
	}

	return nil
}

// UsersPath returns the full path of the users collection file
func (cfg *DataConfig) UsersPath() string {
	return cfg.resolve(cfg.UsersFile)
}

// OrdersPath returns the full path of the orders collection file
func (cfg *DataConfig) OrdersPath() string {
	return cfg.resolve(cfg.OrdersFile)
}

// ContactsPath returns the full path of the contacts collection file
func (cfg *DataConfig) ContactsPath() string {
	return cfg.resolve(cfg.ContactsFile)
}

// resolve joins relative file names onto the data directory. Absolute
// names are used as-is.
func (cfg *DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}
