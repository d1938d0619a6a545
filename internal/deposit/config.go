package deposit

import (
	"fmt"
	"runtime"
)

// Config is the configuration of the deposit validation pipeline
type Config struct {
	// DepositUnitGwei is the fixed amount the contract takes per validator
	DepositUnitGwei uint64 `yaml:"deposit_unit_gwei" envconfig:"DEPOSIT_UNIT_GWEI"`

	// Network selects the genesis fork version for signature checks when
	// the record does not carry one
	Network string `yaml:"network" envconfig:"NETWORK"`

	VerifySignatures       bool `yaml:"verify_signatures" envconfig:"VERIFY_SIGNATURES"`
	RequireCanonicalAmount bool `yaml:"require_canonical_amount" envconfig:"REQUIRE_CANONICAL_AMOUNT"`

	// Workers is the number of records hashed concurrently
	Workers int `yaml:"workers" envconfig:"WORKERS"`
}

func DefaultConfig() *Config {
	return &Config{
		DepositUnitGwei: MinGweiAmount,
		Network:         "mainnet",
		Workers:         runtime.NumCPU(),
	}
}

// Validate checks the config values
func (c *Config) Validate() error {
	if c.DepositUnitGwei == 0 {
		return fmt.Errorf("deposit unit cannot be zero")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := GenesisForkVersion(c.Network); err != nil {
		return err
	}
	return nil
}
