package httpx

import "strings"

// Method is one of the nine HTTP/1.x methods this server recognizes.
// Any other token fails parsing with a ParseError of kind ErrKindMethod.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

var knownMethods = map[string]Method{
	string(MethodGet):     MethodGet,
	string(MethodHead):    MethodHead,
	string(MethodPost):    MethodPost,
	string(MethodPut):     MethodPut,
	string(MethodDelete):  MethodDelete,
	string(MethodConnect): MethodConnect,
	string(MethodOptions): MethodOptions,
	string(MethodTrace):   MethodTrace,
	string(MethodPatch):   MethodPatch,
}

// ParseMethod upper-cases the trimmed token and matches it against the
// nine known method names.
func ParseMethod(token string) (Method, error) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	m, ok := knownMethods[upper]
	if !ok {
		return "", newParseError(ErrKindMethod, "unknown method %q", token)
	}
	return m, nil
}
