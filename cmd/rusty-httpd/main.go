// Command rusty-httpd serves a document root over plain HTTP/1.x.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dEajL3kA/rusty-httpd/internal/config"
	"github.com/dEajL3kA/rusty-httpd/internal/httpx"
	"github.com/dEajL3kA/rusty-httpd/internal/pool"
	"github.com/dEajL3kA/rusty-httpd/internal/webhandler"
)

func main() {
	os.Exit(run())
}

// run wires the process together and returns the process exit code:
// 0 on a clean, signal-triggered shutdown; 1 on any startup or runtime
// failure.
func run() int {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rusty-httpd: failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	log.Info("starting", zap.String("product", httpx.Product), zap.String("version", httpx.Version))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return 1
	}

	handler, err := webhandler.New(cfg.PublicPath, log)
	if err != nil {
		log.Error("failed to initialize handler", zap.Error(err))
		return 1
	}

	addr := &net.TCPAddr{IP: cfg.BindAddr, Port: cfg.Port}
	listener, err := net.ListenTCP("tcp", addr)
	if err != nil {
		log.Error("failed to bind listener", zap.Error(err), zap.Stringer("addr", addr))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := pool.New(listener, handler, log, cfg.Threads, 256, cfg.Timeout)
	if err := srv.Run(ctx); err != nil {
		log.Error("server exited with error", zap.Error(err))
		return 1
	}

	log.Info("shutdown complete")
	return 0
}
