package httpx

import "strings"

// Header is the request's multi-value header map. Names are preserved
// exactly as received on the wire but looked up case-insensitively: two
// header lines differing only in case collapse into the same key, with
// each line's value appended in arrival order.
type Header struct {
	v *Values
}

// NewHeader returns an empty Header.
func NewHeader() Header {
	return Header{v: newValues(strings.ToLower)}
}

// Put adds a name/value pair. An empty-after-trim name is dropped.
func (h Header) Put(name, value string) {
	h.v.Put(name, value)
}

// IsEmpty reports whether no header fields were added.
func (h Header) IsEmpty() bool {
	return h.v.IsEmpty()
}

// Names returns the header names as received, one per distinct key.
func (h Header) Names() []string {
	return h.v.Keys()
}

// Values returns every value for name (case-insensitive), if present.
func (h Header) Values(name string) ([]string, bool) {
	return h.v.Values(name)
}

// Get returns the first value for name (case-insensitive), if present.
func (h Header) Get(name string) (string, bool) {
	return h.v.Get(name)
}
