package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Params holds request parameters keyed by their wire name. A nil value marks
// the parameter as absent: Encode skips it entirely. This is the single place
// absence semantics are enforced, so endpoint wrappers can insert optional
// arguments unconditionally.
type Params map[string]any

const upperhex = "0123456789ABCDEF"

// Encode renders params as a percent-encoded query string with keys in sorted
// order. Nil-valued entries are omitted, every remaining value is converted to
// its canonical text form and escaped per RFC 3986. An empty or all-nil map
// encodes to the empty string.
func Encode(params Params) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(k))
		b.WriteByte('=')
		b.WriteString(escape(formatValue(params[k])))
	}
	return b.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// escape percent-encodes every byte outside the RFC 3986 unreserved set,
// one uppercase %XX triplet per byte. Multi-byte UTF-8 sequences come out as
// one triplet per byte.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
