// Package pool runs the fixed-size worker pool that turns accepted
// connections into requests: one acceptor goroutine feeding a bounded
// channel, N worker goroutines draining it.
package pool

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dEajL3kA/rusty-httpd/internal/httpx"
	"github.com/dEajL3kA/rusty-httpd/internal/netx"
	"github.com/dEajL3kA/rusty-httpd/internal/webhandler"
)

const (
	// acceptDeadline bounds a single Accept call so the acceptor can
	// notice cancellation even with no incoming connections.
	acceptDeadline = 300 * time.Second
	// enqueueTimeout bounds how long the acceptor waits for a worker
	// to free up before the connection is dropped.
	enqueueTimeout = 30 * time.Second

	minThreads, maxThreads = 2, 64
	minBacklog, maxBacklog = 1, 16384
)

// connCounter assigns a monotonically increasing id to every accepted
// connection, independent of which worker ends up handling it.
var connCounter atomic.Int64

// Pool owns the listener and dispatches accepted connections to a fixed
// set of worker goroutines through a bounded channel.
type Pool struct {
	listener net.Listener
	handler  *webhandler.Handler
	log      *zap.Logger
	threads  int
	backlog  int
	timeout  time.Duration // per-op I/O timeout; 0 disables it
}

// New clamps threads to [2, 64] and backlog to [1, 16384], mirroring
// the bounds a server with no configuration would otherwise pick for
// itself. timeout is the configured per-op I/O deadline; 0 disables it.
func New(listener net.Listener, handler *webhandler.Handler, log *zap.Logger, threads, backlog int, timeout time.Duration) *Pool {
	return &Pool{
		listener: listener,
		handler:  handler,
		log:      log,
		threads:  clamp(threads, minThreads, maxThreads),
		backlog:  clamp(backlog, minBacklog, maxBacklog),
		timeout:  timeout,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Run starts the acceptor and all workers and blocks until ctx is
// cancelled and every worker has drained its in-flight connection, or
// until one of them returns a non-nil error.
func (p *Pool) Run(ctx context.Context) error {
	p.log.Info("server listening", zap.Stringer("addr", p.listener.Addr()), zap.Int("threads", p.threads), zap.Int("backlog", p.backlog))

	connCh := make(chan net.Conn, p.backlog)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.threads; i++ {
		workerID := i
		g.Go(func() error {
			p.workerLoop(ctx, workerID, connCh)
			return nil
		})
	}
	g.Go(func() error {
		return p.acceptLoop(ctx, connCh)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// acceptLoop accepts connections and enqueues them until ctx is
// cancelled, at which point it closes the listener and returns. A
// connection that can't be enqueued within enqueueTimeout is dropped,
// never blocking the acceptor on a saturated pool.
func (p *Pool) acceptLoop(ctx context.Context, connCh chan<- net.Conn) error {
	defer close(connCh)
	defer p.listener.Close()

	// Close the listener as soon as ctx is cancelled so a blocked Accept
	// returns immediately instead of waiting out acceptDeadline.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			p.listener.Close()
		case <-stop:
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if tl, ok := p.listener.(*net.TCPListener); ok {
			_ = tl.SetDeadline(time.Now().Add(acceptDeadline))
		}

		conn, err := p.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			p.log.Error("accept failed", zap.Error(err))
			continue
		}

		p.log.Info("connection received", zap.Stringer("remote", conn.RemoteAddr()))

		select {
		case connCh <- conn:
		case <-time.After(enqueueTimeout):
			p.log.Warn("failed to enqueue connection, dropping", zap.Stringer("remote", conn.RemoteAddr()))
			conn.Close()
		case <-ctx.Done():
			conn.Close()
			return nil
		}
	}
}

// workerLoop drains connCh until it's closed or ctx is cancelled. It
// keeps exactly one bytebufferpool.ByteBuffer alive for its entire
// lifetime, reused across every connection it handles rather than
// drawn fresh from the shared pool per request.
func (p *Pool) workerLoop(ctx context.Context, workerID int, connCh <-chan net.Conn) {
	scratch := new(bytebufferpool.ByteBuffer)
	for {
		select {
		case conn, ok := <-connCh:
			if !ok {
				return
			}
			p.handleConnection(ctx, workerID, conn, scratch)
		case <-ctx.Done():
			return
		}
	}
}

// handleConnection reads exactly one request from conn, dispatches it,
// and writes exactly one response. Pipelined requests on the same
// connection are not supported; the connection is closed once the
// response has been sent.
func (p *Pool) handleConnection(ctx context.Context, workerID int, conn net.Conn, scratch *bytebufferpool.ByteBuffer) {
	connID := connCounter.Add(1)
	log := p.log.With(zap.Int("worker", workerID), zap.Int64("conn", connID))
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			log.Error("request handling panicked", zap.Any("recovered", r))
		}
	}()

	// A failure here — timeout, cancellation, or exceeding the header
	// size cap — abandons the request outright; no response is
	// attempted, matching how a transport-level failure is handled.
	raw, err := netx.ReadHeaderBlock(ctx, conn, p.timeout, scratch)
	if err != nil {
		log.Warn("failed to read request header, abandoning request", zap.Error(err))
		return
	}

	req, err := httpx.ParseRequest(raw)
	if err != nil {
		log.Warn("failed to parse request", zap.Error(err))
		resp := webhandler.HandleParseError(err)
		defer resp.Close()
		if sendErr := resp.Send(ctx, conn, p.timeout); sendErr != nil {
			log.Warn("failed to send error response", zap.Error(sendErr))
		}
		return
	}

	log.Info("received request", zap.String("method", string(req.Method)), zap.String("path", req.Path))

	resp := p.handler.Handle(req)
	defer resp.Close()

	if err := resp.Send(ctx, conn, p.timeout); err != nil {
		log.Warn("failed to send response", zap.Error(err))
	}
}
