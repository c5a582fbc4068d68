package netx

import (
	"context"
	"errors"
	"net"
	"regexp"
	"time"

	"github.com/valyala/bytebufferpool"
)

// headerEndPattern matches the blank line terminating an HTTP header
// block: CRLF, then an optional run of whitespace continuation bytes,
// then another CRLF. Continuation whitespace is included so a
// header block terminated by a folded blank line is still recognized.
var headerEndPattern = regexp.MustCompile("\x0D\x0A[\x09\x0B\x0C\x20]*\x0D\x0A")

// MaxHeaderBlockSize is the hard cap on a request-line-plus-headers
// block. A client that exceeds it without completing the header block
// is treated as abusive, not merely slow.
const MaxHeaderBlockSize = 1 << 20

// readChunkSize is how much is read from conn per iteration while
// accumulating the header block.
const readChunkSize = 4096

// ReadHeaderBlock reads from conn until a blank line terminates the
// header block, the accumulated size exceeds MaxHeaderBlockSize, ctx is
// cancelled, or perReadTimeout elapses without progress. A zero
// perReadTimeout disables the per-read deadline entirely, per the
// configured server timeout's documented zero-means-disabled contract.
//
// scratch is reset and then grown in place to hold the accumulated
// bytes; callers are expected to pass the same worker-lifetime buffer
// across every connection it handles rather than allocate one per
// request. On success the returned slice aliases scratch.B through the
// end of the terminating blank line; any bytes read past that point are
// discarded, matching a server that never supports pipelined requests
// on the same read.
func ReadHeaderBlock(ctx context.Context, conn net.Conn, perReadTimeout time.Duration, scratch *bytebufferpool.ByteBuffer) ([]byte, error) {
	scratch.Reset()
	chunk := make([]byte, readChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		deadline := time.Time{}
		if perReadTimeout > 0 {
			deadline = time.Now().Add(perReadTimeout)
		}
		if err := conn.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		n, err := conn.Read(chunk)
		if n > 0 {
			scratch.Write(chunk[:n])
			if scratch.Len() > MaxHeaderBlockSize {
				return nil, ErrHeaderBlockTooLarge
			}
			if loc := headerEndPattern.FindIndex(scratch.B); loc != nil {
				return scratch.B[:loc[1]], nil
			}
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			return nil, err
		}
	}
}

// ErrHeaderBlockTooLarge is returned by ReadHeaderBlock when the client
// sends more than MaxHeaderBlockSize bytes without completing the
// header block.
var ErrHeaderBlockTooLarge = errors.New("netx: header block exceeds maximum size")
