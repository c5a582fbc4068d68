package httpx

import "net/url"

// QueryString is the case-sensitive multi-value map parsed from a
// request target's raw query portion.
type QueryString struct {
	v *Values
}

// NewQueryString returns an empty QueryString.
func NewQueryString() QueryString {
	return QueryString{v: newValues(identity)}
}

func identity(s string) string { return s }

// Put adds a key/value pair. An empty-after-trim key is dropped.
func (q QueryString) Put(key, value string) {
	q.v.Put(key, value)
}

// IsEmpty reports whether the query string carried no parameters.
func (q QueryString) IsEmpty() bool {
	return q.v.IsEmpty()
}

// Keys returns the parameter names, one per distinct key.
func (q QueryString) Keys() []string {
	return q.v.Keys()
}

// Values returns every value for key, in arrival order.
func (q QueryString) Values(key string) ([]string, bool) {
	return q.v.Values(key)
}

// Get returns the first value for key.
func (q QueryString) Get(key string) (string, bool) {
	return q.v.Get(key)
}

// parseQueryString splits raw on '&', then each pair on the first '=',
// percent-decoding key and value. A token that fails to decode is kept
// raw rather than rejected. An entirely empty result is reported via ok
// == false so callers can store "no query" as nothing rather than an
// empty map.
func parseQueryString(raw string) (QueryString, bool) {
	q := NewQueryString()
	for _, part := range splitNonEmpty(raw, '&') {
		key, value := splitOnce(part, '=')
		q.Put(decodeQueryToken(key), decodeQueryToken(value))
	}
	return q, !q.IsEmpty()
}

func decodeQueryToken(tok string) string {
	decoded, err := url.QueryUnescape(tok)
	if err != nil {
		return tok
	}
	return decoded
}
