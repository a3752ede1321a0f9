package battlenet

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Reserved parameter names consumed by the dispatcher
const (
	ParamRegion      = "region"
	ParamAPIKey      = "apikey"
	ParamAPIKeyAlias = "apiKey"
	ParamLocale      = "locale"
)

// Params holds the path and query values of a single call.
// Values may be strings, numbers, bools, fmt.Stringers or []string.
type Params map[string]any

// clone copies p so the caller's map is never modified
func (p Params) clone() Params {
	out := make(Params, len(p)+2)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// take removes key and returns its formatted value
func (p Params) take(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	delete(p, key)
	return formatValue(v), true
}

// query encodes the remaining params as query values. nil values are skipped.
func (p Params) query() url.Values {
	q := make(url.Values, len(p))
	for k, v := range p {
		if v == nil {
			continue
		}
		q.Set(k, formatValue(v))
	}
	return q
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
