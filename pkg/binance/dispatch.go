package binance

import (
	"context"
	"net/http"

	"binancekit/pkg/core"
)

const (
	headerAPIKey    = "X-MBX-APIKEY"
	contentTypeForm = "application/x-www-form-urlencoded"
	acceptJSON      = "application/json"
)

// PublicGet issues an unauthenticated GET for path with the encoded params
// and returns the interpreted JSON tree. The "?" separator is omitted when
// the query is empty.
func (c *Client) PublicGet(ctx context.Context, path string, params core.Params) (any, error) {
	url := path
	if query := core.Encode(params); query != "" {
		url += "?" + query
	}

	resp, err := c.http.Do(ctx, http.MethodGet, url, map[string]string{
		"Accept": acceptJSON,
	}, "")
	if err != nil {
		return nil, err
	}

	return interpret(resp.StatusCode, resp.Body)
}

// SignedGet issues an authenticated GET carrying the signed query string.
// It fails with core.ErrMissingAPIKey before any network traffic when the
// config has no API key.
func (c *Client) SignedGet(ctx context.Context, path string, params core.Params) (any, error) {
	if c.config.APIKey == "" {
		return nil, core.ErrMissingAPIKey
	}

	query, err := c.sign(params)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, http.MethodGet, path+"?"+query, map[string]string{
		"Accept":     acceptJSON,
		headerAPIKey: c.config.APIKey,
	}, "")
	if err != nil {
		return nil, err
	}

	return interpret(resp.StatusCode, resp.Body)
}

// SignedPost issues an authenticated POST with the signed query string as a
// form-encoded request body.
func (c *Client) SignedPost(ctx context.Context, path string, params core.Params) (any, error) {
	if c.config.APIKey == "" {
		return nil, core.ErrMissingAPIKey
	}

	query, err := c.sign(params)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, http.MethodPost, path, map[string]string{
		"Accept":       acceptJSON,
		"Content-Type": contentTypeForm,
		headerAPIKey:   c.config.APIKey,
	}, query)
	if err != nil {
		return nil, err
	}

	return interpret(resp.StatusCode, resp.Body)
}
