package httpx

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"
)

// Product and Version name this server in the Server response header,
// mirroring the original's "Rusty HTTP Server <CARGO_PKG_VERSION>".
const (
	Product = "Rusty HTTP Server"
	Version = "0.1.0"
)

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyText          // 'static string, borrowed rather than owned
	bodyBytes         // owned byte buffer
	bodyFile          // open file, streamed
)

// Response is a serialized HTTP/1.1 status line + header block, built
// eagerly at construction time, plus a body variant consumed exactly
// once by Send.
type Response struct {
	headerBytes []byte
	kind        bodyKind
	text        string
	data        []byte
	file        *os.File
}

// NewResponse builds a header-only response (no body bytes follow the
// blank line). size, when non-nil, sets Content-Length.
func NewResponse(status StatusCode, size *int64, contentType string) *Response {
	return &Response{
		headerBytes: buildHeader(status, size, contentType),
		kind:        bodyNone,
	}
}

// ResponseFromFile builds a response whose body streams from file. The
// file's size (via Stat) becomes Content-Length.
func ResponseFromFile(status StatusCode, file *os.File, contentType string) (*Response, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	return &Response{
		headerBytes: buildHeader(status, &size, contentType),
		kind:        bodyFile,
		file:        file,
	}, nil
}

// ResponseFromText builds a response whose body is a fixed, 'static
// string — used for the canned error pages. contentType defaults to
// text/plain when empty.
func ResponseFromText(status StatusCode, text string, contentType string) *Response {
	if contentType == "" {
		contentType = "text/plain"
	}
	size := int64(len(text))
	return &Response{
		headerBytes: buildHeader(status, &size, contentType),
		kind:        bodyText,
		text:        text,
	}
}

// ResponseFromString builds a response from an owned, dynamically built
// string. Semantically identical to ResponseFromText; kept distinct to
// mirror the source's owned-vs-borrowed body variants.
func ResponseFromString(status StatusCode, s string, contentType string) *Response {
	return ResponseFromText(status, s, contentType)
}

// ResponseFromData builds a response from an owned byte buffer.
func ResponseFromData(status StatusCode, data []byte, contentType string) *Response {
	size := int64(len(data))
	return &Response{
		headerBytes: buildHeader(status, &size, contentType),
		kind:        bodyBytes,
		data:        data,
	}
}

// buildHeader assembles:
//
//	HTTP/1.1 <code> <reason>\r\n
//	Server: <product> <version>\r\n
//	[Content-Length: N\r\n]
//	[Content-Type: T\r\n]
//	\r\n
func buildHeader(status StatusCode, size *int64, contentType string) []byte {
	header := make([]byte, 0, 150)
	header = append(header, fmt.Sprintf("HTTP/1.1 %d %s\r\n", int(status), status.ReasonPhrase())...)
	header = append(header, fmt.Sprintf("Server: %s %s\r\n", Product, Version)...)
	if size != nil {
		header = append(header, fmt.Sprintf("Content-Length: %d\r\n", *size)...)
	}
	if contentType != "" {
		header = append(header, fmt.Sprintf("Content-Type: %s\r\n", contentType)...)
	}
	header = append(header, "\r\n"...)
	return header
}

// streamBufferSize is the fixed chunk size used to copy a file body to
// the connection. Kept small and constant rather than sized to the file,
// since a worker's scratch buffer must stay bounded across requests.
const streamBufferSize = 4096

// Send writes the status line, headers, and body to conn, enforcing
// writeTimeout as a per-write deadline so a stalled client can never
// block a worker indefinitely. ctx is polled between file chunks so a
// server-wide shutdown interrupts an in-progress transfer.
func (r *Response) Send(ctx context.Context, conn net.Conn, writeTimeout time.Duration) error {
	if err := writeAll(conn, r.headerBytes, writeTimeout); err != nil {
		return err
	}

	switch r.kind {
	case bodyNone:
		return nil
	case bodyText:
		return writeAll(conn, []byte(r.text), writeTimeout)
	case bodyBytes:
		return writeAll(conn, r.data, writeTimeout)
	case bodyFile:
		return streamFile(ctx, conn, r.file, writeTimeout)
	default:
		return nil
	}
}

// Close releases any resource held by the response body. Safe to call
// unconditionally, including after a failed or successful Send.
func (r *Response) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// writeAll sets a fresh write deadline and writes buf in full. Used for
// both the header block and small in-memory bodies, which are always
// written as a single Write call. A zero timeout disables the deadline.
func writeAll(conn net.Conn, buf []byte, timeout time.Duration) error {
	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	_, err := conn.Write(buf)
	return err
}

// streamFile copies file to conn in fixed streamBufferSize chunks, one
// write deadline per chunk, checking ctx before each read so a
// cancelled server doesn't keep pushing bytes to a client that will
// never see the end of the response.
func streamFile(ctx context.Context, conn net.Conn, file *os.File, timeout time.Duration) error {
	buf := make([]byte, streamBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := file.Read(buf)
		if n > 0 {
			if err := writeAll(conn, buf[:n], timeout); err != nil {
				return err
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
	}
}
