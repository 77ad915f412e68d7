package metadata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL+"/", "anon-key", &ClientOptions{HTTPClient: server.Client()})
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("trims trailing slash", func(t *testing.T) {
		t.Parallel()
		c := NewClient("https://example.supabase.co/functions/v1/", "k", nil)
		assert.Equal(t, "https://example.supabase.co/functions/v1/fetch-pinata-metadata", c.URL())
		assert.Zero(t, c.httpClient.Timeout)
	})

	t.Run("applies custom HTTP client", func(t *testing.T) {
		t.Parallel()
		hc := &http.Client{}
		c := NewClient("https://x", "k", &ClientOptions{HTTPClient: hc})
		assert.Same(t, hc, c.httpClient)
	})
}

func TestClient_FetchPinataMetadata(t *testing.T) {
	t.Parallel()

	t.Run("posts the request body and decodes the response", func(t *testing.T) {
		t.Parallel()
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/fetch-pinata-metadata", r.URL.Path)
			assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{
				"contractAddress": LandTokenContract,
				"ipfsHash":        "QmHash",
			}, body)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"metadata":{"name":"LAND","attributes":[{"trait_type":"acres","value":5}]},"ipfsUrl":"https://gateway.pinata.cloud/ipfs/QmHash","contractAddress":"` + LandTokenContract + `"}`))
		})

		resp, err := c.FetchPinataMetadata(context.Background(), Request{ContractAddress: LandTokenContract, IPFSHash: "QmHash"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "LAND", resp.Metadata["name"])
		assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmHash", resp.IPFSURL)
		assert.Equal(t, LandTokenContract, resp.ContractAddress)
	})

	t.Run("omits an empty ipfsHash", func(t *testing.T) {
		t.Parallel()
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, present := body["ipfsHash"]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"success":false,"error":"not pinned"}`))
		})

		resp, err := c.FetchPinataMetadata(context.Background(), Request{ContractAddress: FractionalizationContract})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "not pinned", resp.Error)
	})

	t.Run("non-2xx status is a transport error", func(t *testing.T) {
		t.Parallel()
		_, c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
		})

		resp, err := c.FetchPinataMetadata(context.Background(), Request{ContractAddress: LandTokenContract})
		require.Error(t, err)
		assert.Nil(t, resp)
		require.ErrorIs(t, err, ErrTransport)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("invalid JSON is a transport error", func(t *testing.T) {
		t.Parallel()
		_, c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := c.FetchPinataMetadata(context.Background(), Request{ContractAddress: LandTokenContract})
		require.ErrorIs(t, err, ErrTransport)
	})

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()
		_, err := NewClient("", "", nil).FetchPinataMetadata(context.Background(), Request{ContractAddress: LandTokenContract})
		require.ErrorIs(t, err, ErrTransport)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		_, c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"metadata":{}}`))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.FetchPinataMetadata(ctx, Request{ContractAddress: LandTokenContract})
		require.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
