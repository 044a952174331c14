package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"time"

	"binancekit/pkg/core"
)

// timestamp returns the current UTC wall clock in milliseconds since epoch,
// the format Binance expects on every signed request.
func timestamp() int64 {
	return time.Now().UnixMilli()
}

// sign clones params, merges in timestamp and recvWindow, encodes the result
// and appends the HMAC-SHA256 signature. The signature is computed over the
// query string exactly as encoded, before the signature field itself is
// appended, so the server can verify it against the received raw query.
func (c *Client) sign(params core.Params) (string, error) {
	if c.config.SecretKey == "" {
		return "", core.ErrMissingSecretKey
	}

	signed := make(core.Params, len(params)+2)
	maps.Copy(signed, params)
	signed["timestamp"] = timestamp()
	signed["recvWindow"] = c.config.RecvWindow

	query := core.Encode(signed)
	return query + "&signature=" + signHMAC(query, c.config.SecretKey), nil
}

func signHMAC(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
