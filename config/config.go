package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Config is the on-disk client state: saved wallets, RPC endpoints and the
// logger toggle.
type Config struct {
	RPCURLs []RPCUrl      `json:"rpc_urls"`
	Wallets []WalletEntry `json:"wallets"`
	Logger  bool          `json:"logger"`
}

// RPCUrl represents an RPC endpoint
type RPCUrl struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// WalletEntry is a saved wallet offered by the connect prompt.
type WalletEntry struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	Active  bool   `json:"active"`
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		RPCURLs: []RPCUrl{
			{
				Name:   "Sepolia",
				URL:    "https://ethereum-sepolia-rpc.publicnode.com",
				Active: true,
			},
		},
		Wallets: []WalletEntry{},
		Logger:  false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		_ = Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// ActiveRPC returns the URL of the active endpoint, or "".
func (c Config) ActiveRPC() string {
	for _, r := range c.RPCURLs {
		if r.Active {
			return r.URL
		}
	}
	return ""
}

// RememberWallet adds addr to the saved wallets (or re-activates it) and
// marks it as the only active one.
func (c *Config) RememberWallet(addr string) {
	found := false
	for i := range c.Wallets {
		match := strings.EqualFold(c.Wallets[i].Address, addr)
		c.Wallets[i].Active = match
		found = found || match
	}
	if !found {
		c.Wallets = append(c.Wallets, WalletEntry{Address: addr, Active: true})
	}
}
