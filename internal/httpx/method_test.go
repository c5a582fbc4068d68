package httpx

import "testing"

func TestParseMethodKnown(t *testing.T) {
	m, err := ParseMethod("get")
	if err != nil || m != MethodGet {
		t.Fatalf("ParseMethod(get) = %v, %v", m, err)
	}
}

func TestParseMethodUnknown(t *testing.T) {
	_, err := ParseMethod("FROB")
	if err == nil || !IsParseError(err) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
