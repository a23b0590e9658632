package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the application. Values come from
// config.yaml if present, overridden by MYBRICKS_* environment variables.
type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	Database DBConfig      `mapstructure:"database"`
	Session  SessionConfig `mapstructure:"session"`
	Storage  StorageConfig `mapstructure:"storage"`
	Admin    AdminConfig   `mapstructure:"admin"`
	Wallets  WalletConfig  `mapstructure:"wallets"`
	Env      string        `mapstructure:"env"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
	Name   string `mapstructure:"name"`
}

type StorageConfig struct {
	Path      string `mapstructure:"path"`       // directory holding uploaded images
	URLPrefix string `mapstructure:"url_prefix"` // public prefix the directory is served under
	QuotaGB   int    `mapstructure:"quota_gb"`   // quota shown on the dashboard
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"` // seeded on first start, bcrypt-hashed
}

// WalletConfig lists the donation addresses shown on the support page.
type WalletConfig struct {
	BTC      string `mapstructure:"btc"`
	SOL      string `mapstructure:"sol"`
	ETH      string `mapstructure:"eth"`
	BNB      string `mapstructure:"bnb"`
	USDTTron string `mapstructure:"usdt_tron"`
}

// Load reads .env (if any), config.yaml (if any) and the environment.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("MYBRICKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "mybricks.db")
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.name", "mybricks_session")
	v.SetDefault("storage.path", "data/build-images")
	v.SetDefault("storage.url_prefix", "/media/build-images")
	v.SetDefault("storage.quota_gb", 1)
	v.SetDefault("admin.email", "admin@mybricks.local")
	v.SetDefault("admin.password", "bricks123")
	v.SetDefault("wallets.btc", "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh")
	v.SetDefault("wallets.sol", "7EcDhSYGxXyscszYEp35KHN8vvw3svAuLKTzXwCFLtV")
	v.SetDefault("wallets.eth", "0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
	v.SetDefault("wallets.bnb", "0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
	v.SetDefault("wallets.usdt_tron", "TXwZ8FiNn5hPVDLSx8Xu3yH4CmPqT4CqVt")
}
