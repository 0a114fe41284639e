package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	envKey             = "env"
	addrKey            = "addr"
	dbPathKey          = "db_path"
	jwtSecretKey       = "jwt_secret"
	hashSaltKey        = "hash_salt"
	hashMinLengthKey   = "hash_min_length"
	shutdownTimeoutKey = "shutdown_timeout"
)

type Config struct {
	Env             string
	Addr            string
	DBPath          string
	JWTSecret       string
	HashSalt        string
	HashMinLength   int
	ShutdownTimeout time.Duration
}

// Load reads roomhub.yaml from the working directory if present, then lets
// ROOMHUB_* env vars override everything.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault(envKey, "dev")
	v.SetDefault(addrKey, ":8080")
	v.SetDefault(dbPathKey, "./roomhub.db")
	v.SetDefault(jwtSecretKey, "dev-secret-change")
	v.SetDefault(hashSaltKey, "dev-salt-change")
	v.SetDefault(hashMinLengthKey, 8)
	v.SetDefault(shutdownTimeoutKey, 5*time.Second)

	v.SetConfigName("roomhub")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("ROOMHUB")
	v.AutomaticEnv()

	return Config{
		Env:             v.GetString(envKey),
		Addr:            v.GetString(addrKey),
		DBPath:          v.GetString(dbPathKey),
		JWTSecret:       v.GetString(jwtSecretKey),
		HashSalt:        v.GetString(hashSaltKey),
		HashMinLength:   v.GetInt(hashMinLengthKey),
		ShutdownTimeout: v.GetDuration(shutdownTimeoutKey),
	}, nil
}
