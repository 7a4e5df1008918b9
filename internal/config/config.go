package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `env-default:"local" yaml:"env"`                          // Env is the current environment: local, dev, prod.
	Postgres PostgresConfig `                    yaml:"postgres" env-required:"true"` // Postgres holds the database configuration
	Server   ServerConfig   `                    yaml:"server"`                       // Server holds the monitoring server configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

// ServerConfig struct holds the monitoring HTTP server settings.
type ServerConfig struct {
	Port        int `yaml:"port"         env-default:"8080"` // Port is the port of the health/metrics endpoint.
	LockTimeout int `yaml:"lock_timeout" env-default:"3"`    // LockTimeout bounds row-lock waits, in seconds.
}

// MustLoad loads the configuration from a YAML file and returns a Config struct.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic("config error: " + err.Error())
	}

	defServerPort := 8080
	defLockTimeout := 3

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("server.port", defServerPort)
	viper.SetDefault("server.lock_timeout", defLockTimeout)

	return &Config{
		Env: viper.GetString("env"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
		Server: ServerConfig{
			Port:        viper.GetInt("server.port"),
			LockTimeout: viper.GetInt("server.lock_timeout"),
		},
	}
}
