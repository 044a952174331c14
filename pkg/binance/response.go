package binance

import (
	"fmt"

	"github.com/bytedance/sonic"

	"binancekit/pkg/core"
)

// interpret classifies a completed round trip into a parsed JSON tree or an
// error. The exchange's embedded error code is the authoritative signal: a
// negative top-level "code" field fails the call even when the HTTP status is
// 2xx, because Binance sometimes wraps error payloads in success statuses and
// vice versa. The HTTP status is only a fallback classifier.
//
// A body that fails to parse on a success status is NOT an exchange error; it
// propagates as a plain decode error so callers can tell the two apart.
func interpret(status int, body []byte) (any, error) {
	var payload any
	if err := sonic.Unmarshal(body, &payload); err != nil {
		if status < 200 || status >= 300 {
			return nil, httpStatusError(status, body)
		}
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	if obj, ok := payload.(map[string]any); ok {
		if code, ok := errorCode(obj); ok {
			msg, _ := obj["msg"].(string)
			return nil, &core.APIError{Code: code, Message: msg, Status: status}
		}
	}

	if status < 200 || status >= 300 {
		return nil, httpStatusError(status, body)
	}

	return payload, nil
}

func httpStatusError(status int, body []byte) *core.APIError {
	return &core.APIError{
		Code:    core.LocalErrorCode,
		Message: fmt.Sprintf("HTTP %d: %s", status, body),
		Status:  status,
	}
}

// errorCode extracts a negative exchange error code from a parsed object.
// Non-negative codes pass through: some endpoints legitimately return a
// "code" field on success.
func errorCode(obj map[string]any) (int, bool) {
	v, ok := obj["code"]
	if !ok {
		return 0, false
	}

	var code int
	switch n := v.(type) {
	case float64:
		code = int(n)
	case int64:
		code = int(n)
	default:
		return 0, false
	}

	if code >= 0 {
		return 0, false
	}
	return code, true
}
