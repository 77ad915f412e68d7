package rpc

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client wraps an Ethereum RPC client
type Client struct {
	*ethclient.Client
	URL string
}

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect attempts to connect to an Ethereum RPC endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout attempts to connect with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}

	return ConnectResult{
		Client: &Client{
			Client: client,
			URL:    url,
		},
		Error: nil,
	}
}

// ChainReader is the part of the node API the account panel reads.
type ChainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// AccountInfo is what the header shows for a connected wallet.
type AccountInfo struct {
	Address      string
	ChainID      uint64
	WrongNetwork bool
	EthWei       *big.Int
	LoadedAt     time.Time
	ErrMessage   string
}

// LoadAccount reads the chain id and ETH balance for addr. A chain other than
// wantChainID is flagged but the balance is still read.
func LoadAccount(reader ChainReader, addr common.Address, wantChainID uint64) AccountInfo {
	return LoadAccountWithTimeout(reader, addr, wantChainID, 12*time.Second)
}

// LoadAccountWithTimeout is LoadAccount with a custom timeout.
func LoadAccountWithTimeout(reader ChainReader, addr common.Address, wantChainID uint64, timeout time.Duration) AccountInfo {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	info := AccountInfo{
		Address:  addr.Hex(),
		EthWei:   big.NewInt(0),
		LoadedAt: time.Now(),
	}

	if reader == nil {
		info.ErrMessage = "No RPC client (set ETH_RPC_URL)."
		return info
	}
	if c, ok := reader.(*Client); ok && (c == nil || c.Client == nil) {
		info.ErrMessage = "No RPC client (set ETH_RPC_URL)."
		return info
	}

	id, err := reader.ChainID(ctx)
	if err != nil {
		info.ErrMessage = "Failed to read chain id."
		return info
	}
	info.ChainID = id.Uint64()
	info.WrongNetwork = wantChainID != 0 && info.ChainID != wantChainID

	wei, err := reader.BalanceAt(ctx, addr, nil)
	if err != nil {
		info.ErrMessage = "Failed to load ETH balance."
		return info
	}
	info.EthWei = wei

	return info
}
