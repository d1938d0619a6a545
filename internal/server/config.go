package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/umbracle/batchdeposit/internal/deposit"
	"gopkg.in/yaml.v3"
)

// envPrefix is the prefix of the environment variables read by ReadConfig
const envPrefix = "BATCHDEPOSIT"

type Config struct {
	Name     string          `yaml:"name" envconfig:"NAME"`
	GRPCAddr string          `yaml:"grpc_addr" envconfig:"GRPC_ADDR"`
	HTTPAddr string          `yaml:"http_addr" envconfig:"HTTP_ADDR"`
	LogLevel string          `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Deposit  *deposit.Config `yaml:"deposit" envconfig:"DEPOSIT"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "batchdeposit",
		GRPCAddr: "localhost:5555",
		HTTPAddr: "localhost:5556",
		LogLevel: "info",
		Deposit:  deposit.DefaultConfig(),
	}
}

// ReadConfig merges the defaults with the yaml file at path (if any), a
// .env file in the working directory (if any) and the environment
func ReadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		if err := readConfigFile(config, path); err != nil {
			return nil, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %v", err)
	}
	if err := envconfig.Process(envPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %v", err)
	}
	if config.Deposit == nil {
		config.Deposit = deposit.DefaultConfig()
	}
	if err := config.Deposit.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readConfigFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to decode config file %s: %v", path, err)
	}
	return nil
}
