package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"landshare-tui/notify"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Tracker owns the loading and metadata state for one view and reports each
// fetch outcome as a toast.
//
// Overlapping fetches are neither serialised nor de-duplicated: the state
// reflects whichever call resolves last, and loading is a single flag that
// the first call to finish clears.
type Tracker struct {
	svc      Service
	notifier notify.Notifier
	logger   *log.Logger

	mu       sync.Mutex
	loading  bool
	metadata Metadata
	ipfsURL  string
}

// NewTracker returns a Tracker backed by svc. A nil notifier or logger
// discards output.
func NewTracker(svc Service, n notify.Notifier, logger *log.Logger) *Tracker {
	if n == nil {
		n = notify.NotifierFunc(func(notify.Notification) {})
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{svc: svc, notifier: n, logger: logger}
}

// Fetch requests metadata for contractAddress and returns it, or nil when the
// call fails at the transport or application level.
func (t *Tracker) Fetch(ctx context.Context, contractAddress, ipfsHash string) Metadata {
	if contractAddress == "" {
		t.fail("", ErrContractRequired)
		return nil
	}

	id := uuid.NewString()
	t.setLoading(true)
	defer t.setLoading(false)

	t.logger.Debug("fetching metadata", "request", id, "contract", contractAddress, "ipfsHash", ipfsHash)

	resp, err := t.call(ctx, Request{ContractAddress: contractAddress, IPFSHash: ipfsHash})
	if err != nil {
		t.fail(id, err)
		return nil
	}

	if !resp.Success || resp.Metadata == nil {
		reason := resp.Error
		if reason == "" {
			reason = "Failed to fetch metadata"
		}
		t.fail(id, fmt.Errorf("%w: %s", ErrApplication, reason))
		return nil
	}

	t.mu.Lock()
	t.metadata = resp.Metadata
	t.ipfsURL = resp.IPFSURL
	t.mu.Unlock()

	t.logger.Info("metadata retrieved", "request", id, "contract", contractAddress)
	t.notifier.Notify(notify.Info("Metadata Retrieved", "Successfully fetched metadata for contract "+contractAddress))
	return resp.Metadata
}

// FetchLandToken fetches metadata for the land token contract.
func (t *Tracker) FetchLandToken(ctx context.Context) Metadata {
	return t.Fetch(ctx, LandTokenContract, "")
}

// FetchFractionalization fetches metadata for the fractionalization contract.
func (t *Tracker) FetchFractionalization(ctx context.Context) Metadata {
	return t.Fetch(ctx, FractionalizationContract, "")
}

// Loading reports whether a fetch is in flight.
func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Metadata returns the last successfully fetched metadata.
func (t *Tracker) Metadata() Metadata {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.metadata
}

// IPFSURL returns the gateway URL that came with the last successful fetch.
func (t *Tracker) IPFSURL() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ipfsURL
}

// call invokes the service, turning a panic or a nil response into a
// transport error so loading is still reset by the caller's defer.
func (t *Tracker) call(ctx context.Context, req Request) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTransport, r)
		}
	}()
	if t.svc == nil {
		return nil, fmt.Errorf("%w: no metadata service", ErrTransport)
	}
	resp, err = t.svc.FetchPinataMetadata(ctx, req)
	if err == nil && resp == nil {
		err = fmt.Errorf("%w: empty response", ErrTransport)
	}
	return resp, err
}

func (t *Tracker) setLoading(v bool) {
	t.mu.Lock()
	t.loading = v
	t.mu.Unlock()
}

func (t *Tracker) fail(id string, err error) {
	t.logger.Error("error fetching metadata", "request", id, "err", err)
	t.notifier.Notify(notify.Error("Failed to fetch metadata: " + reason(err)))
}

// reason strips the package's classification prefix so toasts show the
// underlying message.
func reason(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrTransport, ErrApplication} {
		if errors.Is(err, sentinel) {
			prefix := sentinel.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
		}
	}
	return msg
}
