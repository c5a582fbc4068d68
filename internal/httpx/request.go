package httpx

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dEajL3kA/rusty-httpd/internal/netx"
)

// Request is a parsed HTTP/1.x request. It borrows nothing from the
// source buffer — header and query values are copied out during
// parsing — so its lifetime is independent of whatever scratch buffer
// produced the raw header block.
type Request struct {
	Method Method
	Path   string
	Query  *QueryString // nil when the request target carried no query
	Header *Header      // nil when no header fields were present
}

// maxHeaderLineBytes bounds a single request-line or header-line read;
// the overall header block is separately capped by netx.ReadHeaderBlock.
const maxHeaderLineBytes = 1 << 20

// ParseRequest parses a request-line + header block from raw, which
// must already contain the full header block (through its terminating
// blank line). It implements spec §4.2 steps 1–8.
func ParseRequest(raw []byte) (*Request, error) {
	if !utf8.Valid(raw) {
		return nil, newParseError(ErrKindEncoding, "request is not valid UTF-8")
	}

	lines := netx.NewCRLFFastReader(bytes.NewReader(raw))

	requestLine, _, err := lines.ReadLine(maxHeaderLineBytes)
	if err != nil {
		return nil, newParseError(ErrKindRequest, "failed to read request line: %v", err)
	}

	method, target, proto, err := splitRequestLine(string(requestLine))
	if err != nil {
		return nil, err
	}

	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}

	if err := checkProtocol(proto); err != nil {
		return nil, err
	}

	path, rawQuery := splitOnce(target, '?')

	req := &Request{Method: m, Path: path}
	if rawQuery != "" {
		if qs, ok := parseQueryString(rawQuery); ok {
			req.Query = &qs
		}
	}

	hdr, err := parseHeaderLines(lines)
	if err != nil {
		return nil, err
	}
	if !hdr.IsEmpty() {
		req.Header = &hdr
	}

	return req, nil
}

// splitRequestLine splits "METHOD SP Request-Target SP HTTP/x.y" into
// its three whitespace-separated tokens. Missing tokens fail with
// ErrKindRequest.
func splitRequestLine(line string) (method, target, proto string, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", "", "", newParseError(ErrKindRequest, "expected 3 tokens, got %d", len(fields))
	}
	return fields[0], fields[1], fields[2], nil
}

// checkProtocol matches "HTTP/<major>.<minor>" case-insensitively and
// accepts only major == 1 with minor < 2 (1.0 or 1.1).
func checkProtocol(proto string) error {
	lower := strings.ToLower(proto)
	if !strings.HasPrefix(lower, "http/") {
		return newParseError(ErrKindProtocol, "missing HTTP/ prefix: %q", proto)
	}
	ver := lower[len("http/"):]
	dot := strings.IndexByte(ver, '.')
	if dot < 0 {
		return newParseError(ErrKindProtocol, "missing version separator: %q", proto)
	}
	major, err1 := strconv.Atoi(ver[:dot])
	minor, err2 := strconv.Atoi(ver[dot+1:])
	if err1 != nil || err2 != nil {
		return newParseError(ErrKindProtocol, "non-numeric version: %q", proto)
	}
	if major != 1 || minor >= 2 {
		return newParseError(ErrKindProtocol, "unsupported version: %q", proto)
	}
	return nil
}

// parseHeaderLines reads header lines from lines via C1 until the first
// empty line. Each line is "name: value" split on the first colon, both
// sides trimmed; an empty name drops the line.
func parseHeaderLines(lines *netx.CRLFFastReader) (Header, error) {
	hdr := NewHeader()
	for {
		line, _, err := lines.ReadLine(maxHeaderLineBytes)
		if err != nil || len(line) == 0 {
			break
		}
		name, value := splitOnce(string(line), ':')
		hdr.Put(name, value)
	}
	return hdr, nil
}
