package binance

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binancekit/pkg/core"
)

const (
	testAPIKey    = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	testSecretKey = "NhqRknCKmdSySsJzbFmLqyqqhcuxjewpiYUQaSTmFW7nhpKVh4tHiui0"
)

// newTestClient builds a client pointed at baseURL. Empty key arguments leave
// the config public-only.
func newTestClient(t *testing.T, baseURL, apiKey, secretKey string) *Client {
	t.Helper()

	config := core.DefaultConfig().
		WithBaseURL(baseURL).
		WithCredentials(apiKey, secretKey)

	client, err := New(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew_DefaultConfig(t *testing.T) {
	client, err := New(core.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.NoError(t, client.Close())
}

func TestNew_InvalidConfig(t *testing.T) {
	config := core.DefaultConfig().WithBaseURL("")

	_, err := New(config)
	assert.ErrorContains(t, err, "validate config")
}

func TestNew_WithLogger(t *testing.T) {
	client, err := New(core.DefaultConfig(), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.NotNil(t, client)
}
