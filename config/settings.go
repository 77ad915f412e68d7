package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// DefaultChainID is Sepolia, where the platform contracts are deployed.
const DefaultChainID = 11155111

// DefaultConfigFile is the config file name under the home directory.
const DefaultConfigFile = ".landshare-config.json"

var (
	// ErrAdminAddressRequired indicates no admin address was configured.
	ErrAdminAddressRequired = errors.New("admin address is required (LANDSHARE_ADMIN_ADDRESS or --admin)")

	// ErrAdminAddressInvalid indicates the admin address is not a hex address.
	ErrAdminAddressInvalid = errors.New("admin address is not a valid hex address")
)

// Settings are the process-wide values fixed at startup.
type Settings struct {
	AdminAddress string `env:"LANDSHARE_ADMIN_ADDRESS"`
	FunctionsURL string `env:"LANDSHARE_FUNCTIONS_URL"`
	FunctionsKey string `env:"LANDSHARE_FUNCTIONS_KEY"`
	ChainID      uint64 `env:"LANDSHARE_CHAIN_ID" envDefault:"11155111"`
	RPCURL       string `env:"ETH_RPC_URL"`
	ConfigPath   string `env:"LANDSHARE_CONFIG"`
}

// LoadSettings reads dotenv files (missing files are skipped; variables
// already set win) and then parses the environment.
func LoadSettings(dotenv ...string) (Settings, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	if s.ConfigPath == "" {
		homeDir, _ := os.UserHomeDir()
		s.ConfigPath = filepath.Join(homeDir, DefaultConfigFile)
	}
	return s, nil
}

// Validate checks the settings the client cannot run without.
func (s Settings) Validate() error {
	if s.AdminAddress == "" {
		return ErrAdminAddressRequired
	}
	if !common.IsHexAddress(s.AdminAddress) {
		return fmt.Errorf("%w: %q", ErrAdminAddressInvalid, s.AdminAddress)
	}
	return nil
}
