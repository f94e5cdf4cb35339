package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type LedgerConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	LedgerDB     `yaml:"ledger_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Payout       `yaml:"payout"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type LedgerDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

// Payout holds the ledger derivation parameters. The defaults match the
// marketplace's standard plan; per-vendor plans only need config changes.
type Payout struct {
	ReturnWindowDays int     `yaml:"return_window_days" env-default:"3"`
	CommissionRate   float64 `yaml:"commission_rate" env-default:"0.20"`
	GatewayRate      float64 `yaml:"gateway_rate" env-default:"0.02"`
}

func MustLoad() *LedgerConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LEDGER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LEDGER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LedgerConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
