package httpx

import "testing"

func TestHeaderCaseInsensitiveLookup(t *testing.T) {
	h := NewHeader()
	h.Put("Content-Type", "text/html")
	h.Put("content-type", "charset=utf-8")

	got, ok := h.Get("CONTENT-TYPE")
	if !ok || got != "text/html" {
		t.Fatalf("Get = %q, %v; want %q, true", got, ok, "text/html")
	}

	vals, ok := h.Values("Content-Type")
	if !ok || len(vals) != 2 {
		t.Fatalf("Values = %#v, %v", vals, ok)
	}
}

func TestHeaderNamesPreservesFirstSeenCasing(t *testing.T) {
	h := NewHeader()
	h.Put("Host", "example.com")

	names := h.Names()
	if len(names) != 1 || names[0] != "Host" {
		t.Fatalf("Names() = %#v", names)
	}
}

func TestHeaderIsEmpty(t *testing.T) {
	h := NewHeader()
	if !h.IsEmpty() {
		t.Fatal("expected fresh header to be empty")
	}
	h.Put("X-Test", "1")
	if h.IsEmpty() {
		t.Fatal("expected non-empty after Put")
	}
}
