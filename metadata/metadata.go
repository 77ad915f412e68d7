// Package metadata fetches descriptive contract metadata from the
// fetch-pinata-metadata backend function.
package metadata

import (
	"context"
	"errors"
)

// Contract addresses of the two platform contracts.
const (
	LandTokenContract         = "0x2089cb616333462e0987105f137DD8Af2C190957"
	FractionalizationContract = "0x7eFd92FAB22CAD2a2EBaF5795D43e9eE1367dbf6"
)

// FunctionName is the backend function invoked for metadata.
const FunctionName = "fetch-pinata-metadata"

var (
	// ErrTransport indicates the function call itself failed.
	ErrTransport = errors.New("metadata transport failed")

	// ErrApplication indicates the function answered with success=false.
	ErrApplication = errors.New("metadata request failed")

	// ErrContractRequired indicates an empty contract address.
	ErrContractRequired = errors.New("contract address is required")
)

// Metadata is the opaque JSON object returned for a contract.
type Metadata map[string]any

// Request is the function request body.
type Request struct {
	ContractAddress string `json:"contractAddress"`
	IPFSHash        string `json:"ipfsHash,omitempty"`
}

// Response is the function response body.
type Response struct {
	Success         bool     `json:"success"`
	Metadata        Metadata `json:"metadata,omitempty"`
	IPFSURL         string   `json:"ipfsUrl,omitempty"`
	ContractAddress string   `json:"contractAddress,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// Service is the remote metadata function.
type Service interface {
	FetchPinataMetadata(ctx context.Context, req Request) (*Response, error)
}

// ServiceFunc adapts a function to Service.
type ServiceFunc func(ctx context.Context, req Request) (*Response, error)

// FetchPinataMetadata calls f(ctx, req).
func (f ServiceFunc) FetchPinataMetadata(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
